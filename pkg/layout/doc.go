// Package layout provides the LayoutSpec document read by the validator.
//
// A LayoutSpec describes where the text blocks of a social-media creative
// sit on the canvas. Positions and sizes are normalized to the canvas, so
// (0,0) is the top-left corner and (1,1) the bottom-right:
//
//	{
//	  "formatId": "9x16",
//	  "widthPx": 1440,
//	  "heightPx": 2560,
//	  "textBlocks": [
//	    {"id": "headline", "bbox": {"x": 0.1, "y": 0.2, "width": 0.8, "height": 0.1}},
//	    {"id": "cta", "role": "cta", "bbox": {"x": 0.3, "y": 0.7, "width": 0.4, "height": 0.05}},
//	    {"id": "legal", "role": "legal", "scale": 0.7, "bbox": {"x": 0.1, "y": 0.78, "width": 0.8, "height": 0.02}}
//	  ]
//	}
//
// Every field is optional. Defaults are applied while decoding, so a
// decoded [Spec] never needs nil checks except for the canvas size, whose
// default depends on the resolved platform profile (see [Spec.Canvas]):
//
//   - formatId: empty (the validator picks the platform default)
//   - textBlocks: empty
//   - id: "?"
//   - bbox and each of x, y, width, height: 0
//   - role: none
//   - scale: 1
//
// JSON null is treated the same as an absent field. A block id may be any
// JSON scalar and is kept as its literal text, so {"id": 3} reports as "3".
// Fields not listed above
// are ignored, since documents produced by the layout generator carry many
// more properties than the validator looks at.
package layout
