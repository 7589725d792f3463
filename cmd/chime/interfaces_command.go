package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"chime/internal/netiface"
)

func newInterfacesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "interfaces",
		Short:       "List network interfaces the server can bind to",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printInterfaces(cmd.OutOrStdout())
		},
	}
}

func printInterfaces(out io.Writer) error {
	ifaces, err := netiface.List()
	if err != nil {
		return fmt.Errorf("list interfaces: %w", err)
	}
	if len(ifaces) == 0 {
		fmt.Fprintln(out, "No usable network interfaces found")
		return nil
	}

	rows := make([][]string, 0, len(ifaces))
	for _, iface := range ifaces {
		rows = append(rows, []string{iface.Name, iface.Address})
	}
	fmt.Fprintln(out, renderTable([]string{"Interface", "Address"}, rows, nil))
	return nil
}
