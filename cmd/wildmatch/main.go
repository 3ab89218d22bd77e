// wildmatch CLI - structural pattern matching over JSON and YAML documents
package main

import "github.com/wildmatch/wildmatch/pkg/cli"

func main() {
	cli.Execute()
}
