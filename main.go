package main

import "github.com/KaramelBytes/titanic-eda/cmd"

func main() {
	cmd.Execute()
}
