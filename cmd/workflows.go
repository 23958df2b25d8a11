package cmd

import (
	"encoding/json"
	"fmt"
	"ipregistrar/internal/config"
	"ipregistrar/internal/core"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		approveCmd,
		mintNFTCmd,
		registerIPCmd,
		registerTermsCmd,
		attachTermsCmd,
		mintLicenseCmd,
		registerDerivativeCmd,
		createDerivativeCmd,
		announceCmd,
	)

	approveCmd.Flags().String("token", "", "NFT contract the operators are approved on")
	approveCmd.Flags().StringSlice("operator", nil, "Operator address; defaults to the license template and licensing module")

	mintNFTCmd.Flags().String("contract", "", "NFT contract")
	mintNFTCmd.Flags().String("to", "", "Receiver; defaults to the registrar account")
	mintNFTCmd.Flags().String("uri", "", "Token URI")

	registerIPCmd.Flags().String("contract", "", "NFT contract")
	registerIPCmd.Flags().String("token-id", "", "NFT token id")
	registerIPCmd.Flags().String("chain-id", "", "Chain of the NFT; defaults to the connected chain")
	registerIPCmd.Flags().String("metadata", "", "JSON file pinned as the IP metadata")

	registerTermsCmd.Flags().String("minting-fee", "0", "Minting fee in currency token wei")
	registerTermsCmd.Flags().String("rev-share", "10_000_000", "Commercial revenue share, 1e6 = 1%")

	attachTermsCmd.Flags().String("ip-id", "", "IP asset")
	attachTermsCmd.Flags().String("contract", "", "NFT contract of the IP asset")
	attachTermsCmd.Flags().String("terms-id", "", "License terms id")

	mintLicenseCmd.Flags().String("licensor", "", "Licensor IP asset")
	mintLicenseCmd.Flags().String("terms-id", "", "License terms id")
	mintLicenseCmd.Flags().String("amount", "1", "Number of license tokens")
	mintLicenseCmd.Flags().String("receiver", "", "Receiver; defaults to the registrar account")
	mintLicenseCmd.Flags().String("max-minting-fee", "0", "Maximum minting fee, 0 for no limit")
	mintLicenseCmd.Flags().String("max-rev-share", "0", "Maximum revenue share, 0 for no limit")

	registerDerivativeCmd.Flags().String("child", "", "Child IP asset")
	registerDerivativeCmd.Flags().String("contract", "", "NFT contract of the child")
	registerDerivativeCmd.Flags().StringSlice("license-token", nil, "License token ids to burn")

	createDerivativeCmd.Flags().String("parent", "", "Parent IP asset")
	createDerivativeCmd.Flags().String("terms-id", "", "License terms attached to the parent")
	createDerivativeCmd.Flags().String("contract", "", "NFT contract the derivative is minted on")
	createDerivativeCmd.Flags().String("name", "", "Name of the work")
	createDerivativeCmd.Flags().String("description", "", "Description of the work")
	createDerivativeCmd.Flags().String("image", "", "Image file of the work")

	announceCmd.Flags().String("text", "", "Text to post")
}

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve protocol operators on an NFT contract",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := addressFlag(cmd, "token", true)
		if err != nil {
			return err
		}
		operators, err := addressesFlag(cmd, "operator")
		if err != nil {
			return err
		}

		return withApp(cmd, func(a *app) error {
			return a.registrar.ApproveOperators(cmd.Context(), token, operators...)
		})
	},
}

var mintNFTCmd = &cobra.Command{
	Use:   "mint-nft",
	Short: "Mint an NFT",
	RunE: func(cmd *cobra.Command, args []string) error {
		contract, err := addressFlag(cmd, "contract", true)
		if err != nil {
			return err
		}
		to, err := addressFlag(cmd, "to", false)
		if err != nil {
			return err
		}
		uri, _ := cmd.Flags().GetString("uri")

		return withApp(cmd, func(a *app) error {
			tokenID, err := a.registrar.MintNFT(cmd.Context(), contract, to, uri)
			if err != nil {
				return err
			}
			return printJSON(map[string]string{"tokenId": tokenID.String()})
		})
	},
}

var registerIPCmd = &cobra.Command{
	Use:   "register-ip",
	Short: "Register an NFT as an IP asset",
	RunE: func(cmd *cobra.Command, args []string) error {
		contract, err := addressFlag(cmd, "contract", true)
		if err != nil {
			return err
		}
		tokenID, err := bigFlag(cmd, "token-id", true)
		if err != nil {
			return err
		}
		chainID, err := bigFlag(cmd, "chain-id", false)
		if err != nil {
			return err
		}

		req := core.RegisterIPRequest{TokenContract: contract, TokenID: tokenID, ChainID: chainID}
		var requirements []requirement
		if path, _ := cmd.Flags().GetString("metadata"); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read metadata: %w", err)
			}
			if err := json.Unmarshal(raw, &req.Metadata); err != nil {
				return fmt.Errorf("parse metadata: %w", err)
			}
			req.MetadataName = filepath.Base(path)
			requirements = append(requirements, config.App.RequirePinning)
		}

		return withApp(cmd, func(a *app) error {
			asset, err := a.registrar.RegisterIP(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(asset)
		}, requirements...)
	},
}

var registerTermsCmd = &cobra.Command{
	Use:   "register-terms",
	Short: "Register commercial remix license terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		fee, err := bigFlag(cmd, "minting-fee", true)
		if err != nil {
			return err
		}
		share, err := bigFlag(cmd, "rev-share", true)
		if err != nil {
			return err
		}

		return withApp(cmd, func(a *app) error {
			terms := core.CommercialRemixTerms(a.addresses)
			terms.MintingFee = fee
			terms.CommercialRevShare = share

			id, err := a.registrar.RegisterLicenseTerms(cmd.Context(), terms)
			if err != nil {
				return err
			}
			return printJSON(map[string]string{"licenseTermsId": id.String()})
		})
	},
}

var attachTermsCmd = &cobra.Command{
	Use:   "attach-terms",
	Short: "Attach license terms to an IP asset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ipID, err := addressFlag(cmd, "ip-id", true)
		if err != nil {
			return err
		}
		contract, err := addressFlag(cmd, "contract", true)
		if err != nil {
			return err
		}
		termsID, err := bigFlag(cmd, "terms-id", true)
		if err != nil {
			return err
		}

		return withApp(cmd, func(a *app) error {
			return a.registrar.AttachLicenseTerms(cmd.Context(), ipID, contract, termsID)
		})
	},
}

var mintLicenseCmd = &cobra.Command{
	Use:   "mint-license",
	Short: "Mint license tokens of an IP asset",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			req core.MintLicenseRequest
			err error
		)
		if req.LicensorIPID, err = addressFlag(cmd, "licensor", true); err != nil {
			return err
		}
		if req.LicenseTermsID, err = bigFlag(cmd, "terms-id", true); err != nil {
			return err
		}
		if req.Amount, err = bigFlag(cmd, "amount", false); err != nil {
			return err
		}
		if req.Receiver, err = addressFlag(cmd, "receiver", false); err != nil {
			return err
		}
		if req.MaxMintingFee, err = bigFlag(cmd, "max-minting-fee", false); err != nil {
			return err
		}
		if req.MaxRevenueShare, err = bigFlag(cmd, "max-rev-share", false); err != nil {
			return err
		}

		return withApp(cmd, func(a *app) error {
			ids, err := a.registrar.MintLicenseTokens(cmd.Context(), req)
			if err != nil {
				return err
			}
			tokenIDs := make([]string, len(ids))
			for i, id := range ids {
				tokenIDs[i] = id.String()
			}
			return printJSON(map[string][]string{"licenseTokenIds": tokenIDs})
		})
	},
}

var registerDerivativeCmd = &cobra.Command{
	Use:   "register-derivative",
	Short: "Register an IP asset as a derivative by burning license tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		child, err := addressFlag(cmd, "child", true)
		if err != nil {
			return err
		}
		contract, err := addressFlag(cmd, "contract", true)
		if err != nil {
			return err
		}
		tokenIDs, err := bigsFlag(cmd, "license-token")
		if err != nil {
			return err
		}

		return withApp(cmd, func(a *app) error {
			return a.registrar.RegisterDerivative(cmd.Context(), child, contract, tokenIDs)
		})
	},
}

var createDerivativeCmd = &cobra.Command{
	Use:   "create-derivative",
	Short: "Pin, mint, register, license and announce a derivative work",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			req core.DerivativeRequest
			err error
		)
		if req.ParentIPID, err = addressFlag(cmd, "parent", true); err != nil {
			return err
		}
		if req.LicenseTermsID, err = bigFlag(cmd, "terms-id", true); err != nil {
			return err
		}
		if req.NFTContract, err = addressFlag(cmd, "contract", true); err != nil {
			return err
		}
		req.Name, _ = cmd.Flags().GetString("name")
		req.Description, _ = cmd.Flags().GetString("description")

		imagePath, _ := cmd.Flags().GetString("image")
		if imagePath == "" {
			return fmt.Errorf("%w: --image is required", errInvalidFlag)
		}
		if req.Image, err = os.ReadFile(imagePath); err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		req.ImageName = filepath.Base(imagePath)

		return withApp(cmd, func(a *app) error {
			asset, err := a.registrar.CreateDerivative(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(asset)
		}, config.App.RequirePinning)
	},
}

var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Post an announcement",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		if text == "" {
			return fmt.Errorf("%w: --text is required", errInvalidFlag)
		}

		return withApp(cmd, func(a *app) error {
			postID, err := a.registrar.Announce(cmd.Context(), text)
			if err != nil {
				return err
			}
			return printJSON(map[string]string{"postId": postID})
		}, config.App.RequireSocial)
	},
}

// withApp checks the given credentials, wires the registrar, runs fn and
// logs its failure.
func withApp(cmd *cobra.Command, fn func(a *app) error, requirements ...requirement) error {
	a, err := loadApp(cmd.Context(), requirements...)
	if err != nil {
		return err
	}
	defer a.close()

	if err := fn(a); err != nil {
		a.logs.Errorw("command failed", "command", cmd.Name(), "error", err)
		return err
	}
	a.logs.Infow("command completed", "command", cmd.Name())
	return nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
