package settings

// settingsKey is the options-row name of the display settings singleton.
const settingsKey = "global"

// DisplaySettings is the global settings singleton shown behind every
// block: board chrome and background.
type DisplaySettings struct {
	BackgroundColor    string `json:"backgroundColor"`
	HeaderText         string `json:"headerText"`
	Title              string `json:"title"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
}

// Defaults returns the settings a fresh installation boots with.
func Defaults() DisplaySettings {
	return DisplaySettings{
		BackgroundColor:    "#000000",
		HeaderText:         "Department of",
		Title:              "ELECTRONICS & COMPUTER ENGINEERING",
		BackgroundImageURL: "",
	}
}
