// Package viz renders declaratively-described charts.
//
// # Overview
//
// viz evaluates an s-expression document describing plot elements (bars,
// lines, points, axes, grids, legends, ...) and draws them onto a layer,
// which can be backed by a software rasterizer or an SVG writer.
//
// # Quick Start
//
//	import (
//	    "github.com/gographics/viz"
//	    "github.com/gographics/viz/plot"
//	    "github.com/gographics/viz/sexpr"
//	)
//
//	doc, _ := sexpr.ParseString(`
//	    (bars data-x (1 2 3 4) data-y (4 3 5 1) color #06c)
//	    (axes)`)
//
//	layer, raster, _ := viz.NewRasterLayer(600, 400)
//	if err := plot.Render(layer, doc); err != nil {
//	    log.Fatal(err)
//	}
//	raster.WritePNG("chart.png")
//
// # Architecture
//
// The library is organized into:
//   - Root package: measures, colors, paths, styles, layers and backends
//   - sexpr: the expression-tree reader for the chart description language
//   - plot: scales, layout, property binding and the per-element geometry
//     builders driven by a two-pass (autorange, draw) pipeline
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Plot-space coordinates produced by scales are normalized to [0,1] and
// mapped into a clip rectangle in device pixels before drawing.
package viz
