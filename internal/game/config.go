package game

// Simulation runs at a fixed 60 Hz; particle constants are per step.
const (
	SimStep     = 1.0 / 60.0
	MaxFrameDt  = 0.1
	MaxSimSteps = 6 // steps per frame before the accumulator is dropped
)

// Streaming buffer capacities.
const (
	MaxSpriteRender = 4096
	MaxRectRender   = 16
	MaxTextQuads    = 2048
)

// Font atlas layout: printable ASCII 32..126 rasterised from basicfont.Face7x13.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 32
	FontRows   = 3
	FontFirst  = 32
	FontLast   = 126
	FontAtlasW = FontCellW * FontCols
	FontAtlasH = FontCellH * FontRows
)

// Text sizes in logical pixels per glyph cell height.
const (
	TitleScale    = 2.4
	HeadingScale  = 2.0
	BodyScale     = 1.6
	SmallScale    = 1.3
	ButtonScale   = 1.5
	QuestionWidth = 0.8 // of surface width
	QuestionTop   = 120.0
	FeedbackInset = 80.0
	ProgressInset = 30.0
)
