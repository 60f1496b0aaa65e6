package main

import "github.com/Manu343726/x86regs/cmd"

func main() {
	cmd.Execute()
}
