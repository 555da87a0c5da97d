package main

import "github.com/Emrevrg/ai-rapor-olu-turucu/cmd"

func main() {
	cmd.Execute()
}
