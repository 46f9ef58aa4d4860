package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flume-lang/flume/common"
	"github.com/flume-lang/flume/frontend"
)

type CheckCmd struct {
	Path string `help:"Path to the project directory." short:"p" default:"."`
}

func (c *CheckCmd) Run() error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}

	project, err := frontend.LoadProject(absPath, Version)
	if err != nil {
		diag := common.ErrorDiag(err.Error(), common.SpanSrc(frontend.ManifestName))
		diag.Render(os.Stderr)
		return err
	}

	fmt.Printf("%s %s ok\n", project.Name, project.Version)
	return nil
}
