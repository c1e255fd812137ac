// ABOUTME: CLI commands for the lifter profile.
// ABOUTME: Shows and sets name, age, height, weight, and the avatar image.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fitnessfiend/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileName        string
	profileAge         string
	profileHeight      string
	profileWeight      string
	profileAvatarPath  string
	profileClearAvatar bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or set the lifter profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.LoadProfile(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)
		for _, f := range models.AllProfileFields {
			value := p.Get(f)
			if value == "" {
				value = faint.Sprint("-")
			}
			fmt.Fprintf(out, "%s %s\n", padRight(models.ProfileFieldLabels[f]+":", 8), value)
		}
		avatar := faint.Sprint("-")
		if p.HasAvatar() {
			avatar = fmt.Sprintf("set (%d bytes)", len(p.Avatar))
		}
		fmt.Fprintf(out, "%s %s\n", padRight(models.ProfileFieldLabels[models.ProfileAvatar]+":", 8), avatar)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile fields",
	Long: `Set one or more profile fields. Fields not given are left unchanged.

Examples:
  fiend profile set --name Sam --age 34
  fiend profile set --height "5'10\"" --weight 180
  fiend profile set --avatar ~/me.png
  fiend profile set --clear-avatar`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileAvatarPath != "" && profileClearAvatar {
			return fmt.Errorf("--avatar and --clear-avatar cannot be used together")
		}

		ctx := cmd.Context()
		flags := map[string]models.ProfileField{
			"name":   models.ProfileName,
			"age":    models.ProfileAge,
			"height": models.ProfileHeight,
			"weight": models.ProfileWeight,
		}
		values := map[models.ProfileField]string{
			models.ProfileName:   profileName,
			models.ProfileAge:    profileAge,
			models.ProfileHeight: profileHeight,
			models.ProfileWeight: profileWeight,
		}

		changed := 0
		for flag, field := range flags {
			if !cmd.Flags().Changed(flag) {
				continue
			}
			if err := repo.SetProfileField(ctx, field, []byte(values[field])); err != nil {
				return err
			}
			changed++
		}

		if profileAvatarPath != "" {
			img, err := os.ReadFile(profileAvatarPath)
			if err != nil {
				return fmt.Errorf("failed to read avatar: %w", err)
			}
			if err := repo.SetProfileField(ctx, models.ProfileAvatar, img); err != nil {
				return err
			}
			changed++
		}
		if profileClearAvatar {
			p, err := repo.LoadProfile(ctx)
			if err != nil {
				return err
			}
			p.Avatar = nil
			if err := repo.SaveProfile(ctx, p); err != nil {
				return err
			}
			changed++
		}

		out := cmd.OutOrStdout()
		if changed == 0 {
			fmt.Fprintln(out, "Nothing to set. See 'fiend profile set --help'.")
			return nil
		}
		color.New(color.FgGreen).Fprintln(out, "✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileAge, "age", "", "age")
	profileSetCmd.Flags().StringVar(&profileHeight, "height", "", "height")
	profileSetCmd.Flags().StringVar(&profileWeight, "weight", "", "body weight")
	profileSetCmd.Flags().StringVar(&profileAvatarPath, "avatar", "", "path to an avatar image")
	profileSetCmd.Flags().BoolVar(&profileClearAvatar, "clear-avatar", false, "remove the avatar image")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
