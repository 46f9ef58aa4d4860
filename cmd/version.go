package main

import (
	"fmt"
)

var Version = "0.1.0" // replaced by linker flag at build time

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Println("flume version:", Version)
	return nil
}
