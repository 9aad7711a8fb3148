package main

import "github.com/fwojciec/artex"

// Run executes the recommend command.
func (c *RecommendCmd) Run(deps *Dependencies) error {
	return printJSON(deps, artex.RecommendPlatform(c.URL))
}
