// stubwire CLI - offline resolution and dry-run routing of fixture files.
package main

import "github.com/stubwire/stubwire/pkg/cli"

func main() {
	cli.Execute()
}
