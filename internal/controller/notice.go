// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package controller

import (
	"errors"

	"github.com/pdiddy/word2pdf/internal/convert"
)

// NoticeFor maps a Start validation error to the dialog shown for it.
func NoticeFor(err error) convert.Notice {
	switch {
	case errors.Is(err, ErrRunActive):
		return convert.Notice{Level: convert.NoticeInfo, Title: "Conversion in progress", Message: "Please wait for the current batch to finish."}
	case errors.Is(err, ErrNoFiles):
		return convert.Notice{Level: convert.NoticeWarning, Title: "No files selected", Message: "Add at least one Word document to convert."}
	case errors.Is(err, ErrNoOutputDir):
		return convert.Notice{Level: convert.NoticeWarning, Title: "No output folder", Message: "Choose an output folder before converting."}
	case errors.Is(err, ErrOutputDirMissing):
		return convert.Notice{Level: convert.NoticeError, Title: "Invalid folder", Message: "The selected output folder does not exist."}
	default:
		return convert.Notice{Level: convert.NoticeError, Title: "Error", Message: err.Error()}
	}
}
