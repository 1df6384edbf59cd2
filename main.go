package main

import "github.com/datalytic/dataprof/cmd"

func main() {
	cmd.Execute()
}
