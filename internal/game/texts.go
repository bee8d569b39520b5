package game

var clearTexts = []string{
	"With a tiny 3x3 body, you crossed the world.",
	"Few pixels, boundless courage.",
	"There is no right shape. Only the shape that survived.",
	"Another page of a saga only a few dots long.",
	"Whittled down and still moving forward. That is a hero.",
}

var deathTexts = []string{
	"The last pixel melted into the dark...",
	"0 pixels. Not even existence is allowed.",
	"That shape could not cross this world.",
	"Every dot scattered. But you can build again.",
	"The hero is gone. The grid is still here.",
}
