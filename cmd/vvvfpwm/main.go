// Command vvvfpwm inspects, validates and samples switch-angle table files.
package main

import "github.com/katalvlaran/vvvfpwm/cmd/vvvfpwm/cmd"

func main() {
	cmd.Execute()
}
