// Command atelie browses the Atelie showcase gallery of finished apps and product ideas.
package main

import (
	"github.com/alecthomas/kong"
)

// CLI is the command line of atelie.
type CLI struct {
	Config string `help:"Config file path (default ~/.config/atelie/config.yaml)" type:"path"`

	Browse     BrowseCmd     `cmd:"" default:"1" help:"Browse the gallery in the terminal"`
	List       ListCmd       `cmd:"" help:"Print every item of a filtered feed, page by page"`
	Related    RelatedCmd    `cmd:"" help:"Print the items related to one item"`
	Import     ImportCmd     `cmd:"" help:"Import a YAML catalog or an RSS/Atom/JSON feed"`
	Categories CategoriesCmd `cmd:"" help:"Print the category vocabulary with item counts"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("atelie"),
		kong.Description("A showcase gallery for curated apps and early-stage product ideas."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&Globals{ConfigPath: cli.Config}))
}
