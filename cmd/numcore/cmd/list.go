package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [OBJECT...]",
		Short: "List objects, their methods and usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.engine.Registry()
			names := reg.ObjectNames()
			if len(args) > 0 {
				names = names[:0:0]
				for _, arg := range args {
					obj, ok := reg.Object(arg)
					if !ok {
						return mdwerror.New("unknown object: " + arg).
							WithCode(mdwerror.CodeUnknownCommand).
							WithOperation("cmd.list")
					}
					names = append(names, obj.Name)
				}
			}

			out := cmd.OutOrStdout()
			commands := 0
			for _, name := range names {
				obj, _ := reg.Object(name)
				fmt.Fprintf(out, "%s - %s\n", obj.Name, obj.Description)
				for _, method := range reg.MethodNames(name) {
					m := obj.Methods[method]
					synopsis := strings.TrimSpace(obj.Name + "." + m.Name + " " + m.Usage)
					fmt.Fprintf(out, "  %-28s %s\n", synopsis, m.Description)
					commands++
				}
			}
			fmt.Fprintln(out, a.catalog.T(a.uiLocale(), "cli.objects", len(names), commands))
			return nil
		},
	}
}
