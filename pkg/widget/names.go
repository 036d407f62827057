package widget

// Widget names used as DefaultValues keys.
const (
	NameButtonGroup  = "buttonGroup"
	NameSubmitButton = "submitButton"
	NameResetButton  = "resetButton"
	NameText         = "text"
	NameEmail        = "email"
	NamePassword     = "password"
	NameNumber       = "number"
	NameURL          = "url"
	NameTelephone    = "telephone"
	NameSearch       = "search"
	NameHidden       = "hidden"
	NameDate         = "date"
	NameTextArea     = "textArea"

	NameLabel = "label"
	NameHint  = "hint"
	NameError = "error"
)
