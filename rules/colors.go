package rules

import "github.com/battlesnakeio/arcade/board"

var (
	colorBackground = board.Color{R: 50, G: 200, B: 100}
	colorGridLines  = board.Color{}
	colorFood       = board.Color{R: 255, G: 128}
	colorBannerText = board.Color{}
	colorDeadHead   = board.Color{}

	colorRed       = board.Color{R: 255}
	colorBlue      = board.Color{B: 255}
	colorRedDark   = board.Color{R: 150}
	colorBlueDark  = board.Color{B: 150}
	colorDrawBadge = board.Color{R: 100, B: 100}
)
