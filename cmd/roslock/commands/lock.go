package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/roslock/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Generate a lock file of the current project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, _ := cmd.Flags().GetString("project")
			if project != "" {
				if err := os.Chdir(project); err != nil {
					return zerr.Wrap(err, "failed to enter project directory")
				}
			}

			distro, _ := cmd.Flags().GetString("distro")
			partition, _ := cmd.Flags().GetString("partition")

			return c.app.Lock(cmd.Context(), app.LockOptions{
				Distro:        distro,
				PartitionMode: partition,
			})
		},
	}
	cmd.Flags().String("distro", "humble", "Target ROS 2 distribution")
	cmd.Flags().String("partition", app.PartitionCatalog,
		"How keys are routed to the release index: catalog or origin")
	return cmd
}
