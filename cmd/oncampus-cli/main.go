package main

import "github.com/nfrund/oncampus/cmd/oncampus-cli/cmd"

func main() {
	cmd.Execute()
}
