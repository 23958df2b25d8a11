package core

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const explorerURL = "https://aeneid.storyscan.xyz"

// CreateDerivative takes a new work from raw image to a registered, licensed
// derivative of req.ParentIPID: the image and its NFT metadata are pinned, an
// NFT is minted and registered as an IP asset, a license token is minted on
// the parent and burned to register the derivative. The result is announced
// when a poster is configured; a failed announcement is only logged.
func (r *Registrar) CreateDerivative(ctx context.Context, req DerivativeRequest) (AssetRecord, error) {
	if err := validateDerivative(req); err != nil {
		return AssetRecord{}, err
	}
	if r.pinner == nil {
		return AssetRecord{}, ErrPinningUnavailable
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	imageName := req.ImageName
	if imageName == "" {
		imageName = slug(req.Name) + ".png"
	}

	imageCID, err := r.pinner.PinFile(ctx, imageName, bytes.NewReader(req.Image))
	if err != nil {
		return AssetRecord{}, fmt.Errorf("pin image: %w", err)
	}

	metadata := map[string]any{
		"name":             req.Name,
		"description":      req.Description,
		"image":            r.pinner.URI(imageCID),
		"parent_ip_id":     req.ParentIPID.Hex(),
		"license_terms_id": req.LicenseTermsID.String(),
	}
	metadataCID, err := r.pinner.PinJSON(ctx, slug(req.Name)+"_metadata", metadata)
	if err != nil {
		return AssetRecord{}, fmt.Errorf("pin nft metadata: %w", err)
	}
	metadataURI := r.pinner.URI(metadataCID)

	tokenID, err := r.mintNFT(ctx, req.NFTContract, common.Address{}, metadataURI)
	if err != nil {
		return AssetRecord{}, fmt.Errorf("mint derivative nft: %w", err)
	}

	asset, err := r.registerIP(ctx, RegisterIPRequest{
		TokenContract: req.NFTContract,
		TokenID:       tokenID,
	})
	if err != nil {
		return AssetRecord{}, fmt.Errorf("register derivative ip: %w", err)
	}
	asset.NFTMetadataURI = metadataURI

	parentID := req.ParentIPID.Hex()
	asset.ParentIPID = &parentID
	asset.LicenseTermsID = req.LicenseTermsID.String()
	r.saveAsset(ctx, asset)

	licenseTokenIDs, err := r.mintLicenseTokens(ctx, MintLicenseRequest{
		LicensorIPID:   req.ParentIPID,
		LicenseTermsID: req.LicenseTermsID,
	})
	if err != nil {
		return AssetRecord{}, fmt.Errorf("mint parent license: %w", err)
	}

	childID := common.HexToAddress(asset.IPID)
	if err := r.registerDerivative(ctx, childID, req.NFTContract, licenseTokenIDs); err != nil {
		return AssetRecord{}, fmt.Errorf("link derivative: %w", err)
	}
	asset.LicenseTokenIDs = joinIDs(licenseTokenIDs)
	r.saveAsset(ctx, asset)

	if r.poster != nil {
		postID, err := r.poster.PostTweet(ctx, announcement(req.Name, asset.IPID, r.pinner.GatewayURL(imageCID)))
		if err != nil {
			r.logs.Errorw("failed to announce derivative", "ip_id", asset.IPID, "error", err)
		} else {
			asset.AnnouncementID = postID
			r.saveAsset(ctx, asset)
		}
	}

	r.logs.Infow("derivative created",
		"ip_id", asset.IPID,
		"parent_ip_id", parentID,
		"token_id", asset.TokenID,
		"license_token_ids", asset.LicenseTokenIDs)
	return toAssetRecord(asset), nil
}

func validateDerivative(req DerivativeRequest) error {
	switch {
	case req.ParentIPID == (common.Address{}):
		return fmt.Errorf("%w: parent ip id is required", ErrInvalidRequest)
	case req.LicenseTermsID == nil || req.LicenseTermsID.Sign() <= 0:
		return fmt.Errorf("%w: license terms id is required", ErrInvalidRequest)
	case req.NFTContract == (common.Address{}):
		return fmt.Errorf("%w: nft contract is required", ErrInvalidRequest)
	case strings.TrimSpace(req.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	case len(req.Image) == 0:
		return fmt.Errorf("%w: image is required", ErrInvalidRequest)
	}
	return nil
}

func announcement(name, ipID, imageURL string) string {
	return fmt.Sprintf("🎨 Just registered a new derivative work on @StoryProtocol!\n\nTitle: %s\n\nView on Story Protocol: %s/ip/%s\nView on IPFS: %s",
		name, explorerURL, ipID, imageURL)
}

func slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	if len(fields) == 0 {
		return "derivative"
	}
	return strings.Join(fields, "_")
}
