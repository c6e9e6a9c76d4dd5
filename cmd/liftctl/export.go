package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/liftstats/internal/export"
	"github.com/2beens/liftstats/internal/gymstats/aggregates"
	"github.com/2beens/liftstats/internal/gymstats/records"
	"github.com/2beens/liftstats/internal/gymstats/weightlog"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
	"github.com/2beens/liftstats/pkg"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"
)

var (
	exportOutput      string
	exportDriveCreds  string
	exportDriveFolder string
)

var exportCmd = &cobra.Command{
	Use:   "export <username> <format>",
	Short: "Export a user's workouts, aggregates and records",
	Long: `Export a user's data as json, yaml or markdown.

Writes to stdout unless --output is set. With --gdrive-creds the export
is uploaded to the Google Drive backups folder instead.

  liftctl export serj json -o backup.json
  liftctl export serj md --gdrive-creds ./drive-credentials.json`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"json", "yaml", "md"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, err := export.ParseFormat(args[1])
		if err != nil {
			return err
		}

		user, err := lookupUser(ctx, args[0])
		if err != nil {
			return err
		}

		exporter := export.NewExporter(
			workouts.NewRepo(dbPool),
			aggregates.NewRepo(dbPool),
			records.NewRepo(dbPool),
			weightlog.NewRepo(dbPool),
		)
		snap, err := exporter.Collect(ctx, user.ID, user.Username)
		if err != nil {
			return fmt.Errorf("collect export: %w", err)
		}

		if exportDriveCreds != "" {
			credentials, err := os.ReadFile(exportDriveCreds)
			if err != nil {
				return fmt.Errorf("unable to read drive credentials file: %w", err)
			}
			uploader, err := export.NewDriveUploader(ctx, exportDriveFolder, option.WithCredentialsJSON(credentials))
			if err != nil {
				return err
			}
			fileID, err := uploader.UploadSnapshot(ctx, snap, format)
			if err != nil {
				return err
			}
			fmt.Printf("uploaded %s (%s)\n", export.FileName(snap, format), fileID)
			return nil
		}

		var buf bytes.Buffer
		if err := export.Encode(&buf, snap, format); err != nil {
			return err
		}
		if exportOutput == "" {
			_, err = os.Stdout.Write(buf.Bytes())
			return err
		}
		outDir := filepath.Dir(exportOutput)
		exists, err := pkg.PathExists(outDir, true)
		if err != nil {
			return fmt.Errorf("check output dir: %w", err)
		}
		if !exists {
			return fmt.Errorf("output dir %s does not exist", outDir)
		}
		if err := os.WriteFile(exportOutput, buf.Bytes(), 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Printf("exported to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportDriveCreds, "gdrive-creds", "", "google drive service account credentials json")
	exportCmd.Flags().StringVar(&exportDriveFolder, "gdrive-folder", export.DefaultBackupsFolderName, "google drive backups folder name")
}
