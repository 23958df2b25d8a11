package core

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TransactionRecord struct {
	TransactionHash   string  `json:"transactionHash"`
	Label             string  `json:"label,omitempty"`
	TransactionStatus uint64  `json:"transactionStatus"`
	BlockHash         string  `json:"blockHash"`
	BlockNumber       uint64  `json:"blockNumber"`
	GasUsed           uint64  `json:"gasUsed"`
	From              string  `json:"from"`
	To                *string `json:"to"`
	LogsCount         int     `json:"logsCount"`
}

type AssetRecord struct {
	IPID            string   `json:"ipId"`
	ChainID         string   `json:"chainId"`
	TokenContract   string   `json:"tokenContract"`
	TokenID         string   `json:"tokenId"`
	MetadataURI     string   `json:"metadataUri,omitempty"`
	NFTMetadataURI  string   `json:"nftMetadataUri,omitempty"`
	ParentIPID      *string  `json:"parentIpId,omitempty"`
	LicenseTermsID  string   `json:"licenseTermsId,omitempty"`
	LicenseTokenIDs []string `json:"licenseTokenIds,omitempty"`
	RegistrationTx  string   `json:"registrationTx"`
	AnnouncementID  string   `json:"announcementId,omitempty"`
}

type RegisterIPRequest struct {
	TokenContract common.Address
	TokenID       *big.Int
	// ChainID of the NFT; the connected chain when nil.
	ChainID *big.Int
	// Metadata, when set, is pinned and its URI stored with the asset.
	Metadata     map[string]any
	MetadataName string
}

type MintLicenseRequest struct {
	LicensorIPID   common.Address
	LicenseTermsID *big.Int
	Amount         *big.Int
	// Receiver of the tokens; the registrar account when zero.
	Receiver        common.Address
	MaxMintingFee   *big.Int
	MaxRevenueShare *big.Int
}

// DerivativeRequest describes a new work to be minted and registered as a
// derivative of ParentIPID under LicenseTermsID.
type DerivativeRequest struct {
	ParentIPID     common.Address
	LicenseTermsID *big.Int
	NFTContract    common.Address
	Name           string
	Description    string
	Image          []byte
	ImageName      string
}
