package payload

import (
	"ipregistrar/internal/core"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

// DerivativeRequest is the body of POST /registrar/derivatives. Image holds
// the raw image bytes, base64 encoded in JSON.
type DerivativeRequest struct {
	ParentIPID     string `json:"parentIpId"`
	LicenseTermsID string `json:"licenseTermsId"`
	NFTContract    string `json:"nftContract"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Image          []byte `json:"image"`
	ImageName      string `json:"imageName"`
}

func (d DerivativeRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ParentIPID, validation.Required, validation.Match(addressRegex)),
		validation.Field(&d.LicenseTermsID, validation.Required, isPositiveInteger),
		validation.Field(&d.NFTContract, validation.Required, validation.Match(addressRegex)),
		validation.Field(&d.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&d.Description, validation.Length(0, 1000)),
		validation.Field(&d.Image, validation.Required),
	)
}

// ToCoreRequest converts a validated request.
func (d DerivativeRequest) ToCoreRequest() core.DerivativeRequest {
	termsID, _ := new(big.Int).SetString(d.LicenseTermsID, 10)
	return core.DerivativeRequest{
		ParentIPID:     common.HexToAddress(d.ParentIPID),
		LicenseTermsID: termsID,
		NFTContract:    common.HexToAddress(d.NFTContract),
		Name:           d.Name,
		Description:    d.Description,
		Image:          d.Image,
		ImageName:      d.ImageName,
	}
}
