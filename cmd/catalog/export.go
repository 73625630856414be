package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"protoroute/internal/geo"
)

func newExportCmd(open storeOpener) *cobra.Command {
	var output, format string
	cmd := &cobra.Command{
		Use:   "export-geojson <guide-id>",
		Short: "Write a guide's waypoints and track as GeoJSON, or its track as hex WKB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			fc, err := geo.NewExporter(store).Guide(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var data []byte
			switch format {
			case "geojson":
				if data, err = geo.Marshal(fc); err != nil {
					return err
				}
			case "wkb":
				track, err := geo.Track(fc)
				if err != nil {
					return err
				}
				raw, err := geo.ToWKB(track)
				if err != nil {
					return err
				}
				data = []byte(hex.EncodeToString(raw))
			default:
				return fmt.Errorf("unknown format %q, want geojson or wkb", format)
			}
			return writeOutput(cmd, output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "file to write, - for stdout")
	cmd.Flags().StringVar(&format, "format", "geojson", "geojson or wkb")
	return cmd
}

func newDecodeTrackCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "decode-track <hex-wkb|->",
		Short: "Turn a hex WKB track, as written by export-geojson --format wkb, back into GeoJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			if in == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read track: %w", err)
				}
				in = string(b)
			}
			raw, err := hex.DecodeString(strings.TrimSpace(in))
			if err != nil {
				return fmt.Errorf("track is not hex: %w", err)
			}
			track, err := geo.DecodeTrack(raw)
			if err != nil {
				return err
			}
			data, err := geo.MarshalGeometry(track)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "file to write, - for stdout")
	return cmd
}

func writeOutput(cmd *cobra.Command, output string, data []byte) error {
	if output == "" || output == "-" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	return nil
}
