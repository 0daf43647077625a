// Package main is the entry point for the scholarpage application.
package main

import (
	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/cmd"
	"github.com/scholarpage/scholarpage/config"
	"github.com/scholarpage/scholarpage/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
