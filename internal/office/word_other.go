// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package office

import "context"

// wordLauncher is a placeholder off Windows; Word automation needs COM.
type wordLauncher struct{}

func newWordLauncher() *wordLauncher { return &wordLauncher{} }

func (w *wordLauncher) Name() string { return "Microsoft Word" }

func (w *wordLauncher) Available() bool { return false }

func (w *wordLauncher) Launch(ctx context.Context) (Application, error) {
	return nil, ErrUnsupported
}
