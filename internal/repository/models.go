package repository

import "time"

// Transaction is a confirmed or reverted write submitted by the registrar.
type Transaction struct {
	TransactionHash   string    `gorm:"primaryKey;size:66"`  // 0x + 64 hex chars
	Label             string    `gorm:"size:64;not null"`    // workflow step, e.g. register_ip
	TransactionStatus uint64    `gorm:"not null"`            // 1 (success) or 0 (reverted)
	BlockHash         string    `gorm:"size:66;not null"`
	BlockNumber       uint64    `gorm:"not null;index"`
	GasUsed           uint64    `gorm:"not null"`
	Nonce             uint64    `gorm:"not null"`
	From              string    `gorm:"size:42;not null"`
	To                *string   `gorm:"size:42"`
	LogsCount         int       `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

// IPAsset is an NFT registered as an IP asset, together with the licensing
// state the registrar attached to it.
type IPAsset struct {
	IPID            string    `gorm:"primaryKey;size:42"`
	ChainID         string    `gorm:"size:32;not null"`
	TokenContract   string    `gorm:"size:42;not null;index"`
	TokenID         string    `gorm:"size:78;not null"` // uint256 in decimal
	MetadataURI     string    `gorm:"type:text"`
	NFTMetadataURI  string    `gorm:"type:text"`
	ParentIPID      *string   `gorm:"size:42;index"`
	LicenseTermsID  string    `gorm:"size:78"`
	LicenseTokenIDs string    `gorm:"type:text"` // comma separated
	RegistrationTx  string    `gorm:"size:66"`
	AnnouncementID  string    `gorm:"size:64"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
