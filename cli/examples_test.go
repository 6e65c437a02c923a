package cli

import (
	"fmt"
	"github.com/saylorsolutions/clif/argv"
	"github.com/saylorsolutions/clif/schema"
	"os"
)

func ExampleNew() {
	prog, err := New("my-cli").
		EnableHelp().
		Command(Command{
			Name:        "deploy",
			Description: "Deploys the app",
			Options: schema.NewMap().
				Set("env", schema.Str{Meta: schema.Meta{Alias: "e", Usage: "NAME", Description: "Target environment"}}).
				Set("dry-run", schema.Bool{Meta: schema.Meta{Description: "Only print changes"}}),
			Action: func(res *argv.Result, out *Printer) error {
				envName, _ := res.Str("env")
				out.Println("Deploying to", envName)
				return nil
			},
		}).
		Build()
	if err != nil {
		panic(err)
	}
	// Done for testing purposes
	prog.Printer().Redirect(os.Stdout)

	outcome, err := prog.Exec([]string{"deploy", "-e", "prod"})
	fmt.Println(outcome, err)
	_, _ = prog.Exec([]string{"deploy", "--help"})

	// Output:
	// Deploying to prod
	// action <nil>
	// my-cli deploy
	// Deploys the app
	//
	// USAGE:
	// my-cli deploy [FLAGS] [ARGS...]
	//
	// FLAGS
	//   -h, --help       Prints this usage information
	//   -e, --env NAME   Target environment
	//       --dry-run    Only print changes
}

func ExampleProgram_Exec() {
	prog, err := New("my-cli").
		Version("0.0.0").
		Command(Command{
			Options: schema.NewMap().
				Set("count", schema.Num{Meta: schema.Meta{Alias: "c"}}).
				Set("verbose", schema.Bool{}),
			Action: func(res *argv.Result, out *Printer) error {
				count, _ := res.Int("count")
				out.Println(res.Positionals, count, res.Bool("verbose"))
				return nil
			},
		}).
		Build()
	if err != nil {
		panic(err)
	}
	prog.Printer().Redirect(os.Stdout)

	_, _ = prog.Exec([]string{"--version"})
	_, _ = prog.Exec([]string{"unknown-word", "-c", "3", "--verbose"})

	// Output:
	// 0.0.0
	// [unknown-word] 3 true
}
