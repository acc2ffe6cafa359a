//go:build tinygo

package main

import (
	"polaris/app"
	"polaris/hal"
)

func main() {
	app.Run(hal.New())
}
