package core_test

import (
	"context"
	"errors"
	"ipregistrar/internal/contracts"
	"ipregistrar/internal/core"
	"ipregistrar/internal/core/fake"
	"ipregistrar/internal/ethereum"
	"ipregistrar/internal/repository"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Registrar", func() {
	var (
		registrar  *core.Registrar
		fakeTx     *fake.TxSubmitter
		fakeRepo   *fake.Repository
		fakePinner *fake.Pinner
		fakePoster *fake.Poster
		pinner     core.Pinner
		poster     core.Poster
		registry   *contracts.Registry
		addresses  contracts.Addresses
		ctx        context.Context
		testErr    error
		err        error

		account        common.Address
		nft            common.Address
		ipID           common.Address
		transferID     common.Hash
		ipRegisteredID common.Hash
		termsID        common.Hash
	)

	pack := func(role contracts.Role, method string, args ...any) []byte {
		data, packErr := registry.Pack(role, method, args...)
		Expect(packErr).NotTo(HaveOccurred())
		return data
	}

	packOutput := func(role contracts.Role, method string, values ...any) []byte {
		abiDef, abiErr := registry.ABI(role)
		Expect(abiErr).NotTo(HaveOccurred())
		out, packErr := abiDef.Methods[method].Outputs.Pack(values...)
		Expect(packErr).NotTo(HaveOccurred())
		return out
	}

	submitted := func(i int) ethereum.Operation {
		_, op := fakeTx.SubmitAndConfirmArgsForCall(i)
		return op
	}

	ipRegisteredLog := func(tokenID int64) *types.Log {
		return &types.Log{
			Address: addresses.IPAssetRegistry,
			Topics: []common.Hash{
				ipRegisteredID,
				common.BytesToHash(ipID.Bytes()),
				common.BytesToHash(nft.Bytes()),
				common.BigToHash(big.NewInt(tokenID)),
			},
		}
	}

	BeforeEach(func() {
		registry, err = contracts.NewRegistry()
		Expect(err).NotTo(HaveOccurred())
		addresses = contracts.DefaultAddresses()

		transferID, err = registry.EventID(contracts.RoleERC721, "Transfer")
		Expect(err).NotTo(HaveOccurred())
		ipRegisteredID, err = registry.EventID(contracts.RoleIPAssetRegistry, "IPRegistered")
		Expect(err).NotTo(HaveOccurred())
		termsID, err = registry.EventID(contracts.RoleLicenseTemplate, "LicenseTermsRegistered")
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
		testErr = errors.New("test error")
		account = common.HexToAddress("0xAAAA000000000000000000000000000000000001")
		nft = common.HexToAddress("0xBBBB000000000000000000000000000000000002")
		ipID = common.HexToAddress("0xCCCC000000000000000000000000000000000003")

		fakeTx = new(fake.TxSubmitter)
		fakeTx.AddressReturns(account)
		fakeTx.ChainIDReturns(big.NewInt(1315))

		fakeRepo = new(fake.Repository)
		fakeRepo.GetAssetReturns(repository.IPAsset{}, repository.ErrAssetNotFound)

		fakePinner = new(fake.Pinner)
		fakePinner.URIStub = func(cid string) string { return "ipfs://" + cid }
		fakePinner.GatewayURLStub = func(cid string) string { return "https://gateway.test/ipfs/" + cid }
		pinner = fakePinner

		fakePoster = new(fake.Poster)
		poster = fakePoster
	})

	JustBeforeEach(func() {
		registrar = core.NewRegistrar(zap.NewNop().Sugar(), fakeTx, registry, addresses, fakeRepo, nil, pinner, poster)
	})

	Describe("ApproveOperators", func() {
		BeforeEach(func() {
			fakeTx.SubmitAndConfirmReturns(newReceipt("0x01"), nil)
		})

		When("no operator is approved yet", func() {
			It("should approve the license template and the licensing module", func() {
				err = registrar.ApproveOperators(ctx, nft)
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeTx.IsApprovedCallCount()).To(Equal(2))
				_, approval := fakeTx.IsApprovedArgsForCall(0)
				Expect(approval).To(Equal(ethereum.Approval{Token: nft, Operator: addresses.PILTemplate}))

				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(2))
				first := submitted(0)
				Expect(first.Label).To(Equal("set_approval_for_all"))
				Expect(first.To).To(Equal(nft))
				Expect(first.GasLimit).To(Equal(uint64(100_000)))
				Expect(first.Data).To(Equal(pack(contracts.RoleERC721, "setApprovalForAll", addresses.PILTemplate, true)))
				Expect(submitted(1).Data).To(Equal(pack(contracts.RoleERC721, "setApprovalForAll", addresses.LicensingModule, true)))
			})

			It("should record every approval transaction", func() {
				err = registrar.ApproveOperators(ctx, nft)
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(2))
				_, saved := fakeRepo.SaveTransactionsArgsForCall(0)
				Expect(saved).To(HaveLen(1))
				Expect(saved[0].Label).To(Equal("set_approval_for_all"))
				Expect(saved[0].From).To(Equal(account.Hex()))
				Expect(*saved[0].To).To(Equal(nft.Hex()))
				Expect(saved[0].BlockNumber).To(Equal(uint64(1000)))
			})
		})

		When("an operator is already approved", func() {
			BeforeEach(func() {
				fakeTx.IsApprovedReturnsOnCall(0, true, nil)
				fakeTx.IsApprovedReturnsOnCall(1, false, nil)
			})

			It("should only approve the missing one", func() {
				err = registrar.ApproveOperators(ctx, nft)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(1))
				Expect(submitted(0).Data).To(Equal(pack(contracts.RoleERC721, "setApprovalForAll", addresses.LicensingModule, true)))
			})
		})

		When("explicit operators are given", func() {
			It("should approve only those", func() {
				operator := common.HexToAddress("0x0000000000000000000000000000000000000099")
				err = registrar.ApproveOperators(ctx, nft, operator)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(1))
				Expect(submitted(0).Data).To(Equal(pack(contracts.RoleERC721, "setApprovalForAll", operator, true)))
			})
		})

		When("the approval check fails", func() {
			BeforeEach(func() {
				fakeTx.IsApprovedReturns(false, testErr)
			})

			It("should return the error without submitting", func() {
				err = registrar.ApproveOperators(ctx, nft)
				Expect(err).To(MatchError(testErr))
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(0))
			})
		})

		When("the approval transaction reverts", func() {
			BeforeEach(func() {
				reverted := newReceipt("0x02")
				reverted.Status = types.ReceiptStatusFailed
				fakeTx.SubmitAndConfirmReturns(reverted, ethereum.ErrTransactionReverted)
			})

			It("should record the reverted transaction and stops", func() {
				err = registrar.ApproveOperators(ctx, nft)
				Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
				Expect(err.Error()).To(ContainSubstring("set_approval_for_all"))
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(1))

				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(1))
				_, saved := fakeRepo.SaveTransactionsArgsForCall(0)
				Expect(saved[0].TransactionStatus).To(Equal(types.ReceiptStatusFailed))
			})
		})

		When("the ledger is unavailable", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransactionsReturns(testErr)
			})

			It("should still succeed", func() {
				err = registrar.ApproveOperators(ctx, nft)
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("Announce", func() {
		When("the post succeeds", func() {
			BeforeEach(func() {
				fakePoster.PostTweetReturns("tweet-1", nil)
			})

			It("should return the post id", func() {
				id, err := registrar.Announce(ctx, "hello")
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal("tweet-1"))
				_, text := fakePoster.PostTweetArgsForCall(0)
				Expect(text).To(Equal("hello"))
			})
		})

		When("the post fails", func() {
			BeforeEach(func() {
				fakePoster.PostTweetReturns("", testErr)
			})

			It("should return the error", func() {
				_, err := registrar.Announce(ctx, "hello")
				Expect(err).To(MatchError(testErr))
			})
		})

		When("no poster is configured", func() {
			BeforeEach(func() {
				poster = nil
			})

			It("should return ErrPostingUnavailable", func() {
				_, err := registrar.Announce(ctx, "hello")
				Expect(err).To(MatchError(core.ErrPostingUnavailable))
			})
		})
	})

	Describe("MintNFT", func() {
		var tokenID *big.Int

		When("the transfer event is present", func() {
			BeforeEach(func() {
				fakeTx.SubmitAndConfirmReturns(newReceipt("0x01", transferLog(nft, account, transferID, 42)), nil)
			})

			It("should mint to the account and returns the token id", func() {
				tokenID, err = registrar.MintNFT(ctx, nft, common.Address{}, "ipfs://meta")
				Expect(err).NotTo(HaveOccurred())
				Expect(tokenID.Int64()).To(Equal(int64(42)))

				op := submitted(0)
				Expect(op.Label).To(Equal("mint_nft"))
				Expect(op.To).To(Equal(nft))
				Expect(op.Data).To(Equal(pack(contracts.RoleERC721, "mint", account, "ipfs://meta")))
			})
		})

		When("the transfer comes from another contract", func() {
			BeforeEach(func() {
				other := common.HexToAddress("0x0000000000000000000000000000000000000123")
				fakeTx.SubmitAndConfirmReturns(newReceipt("0x01", transferLog(other, account, transferID, 42)), nil)
			})

			It("should return ErrLogNotFound", func() {
				_, err = registrar.MintNFT(ctx, nft, account, "ipfs://meta")
				Expect(err).To(MatchError(ethereum.ErrLogNotFound))
			})
		})

		When("the mint fails", func() {
			BeforeEach(func() {
				fakeTx.SubmitAndConfirmReturns(nil, ethereum.ErrRPC)
			})

			It("should return the pipeline error and records nothing", func() {
				_, err = registrar.MintNFT(ctx, nft, account, "ipfs://meta")
				Expect(err).To(MatchError(ethereum.ErrRPC))
				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("RegisterIP", func() {
		var (
			req    core.RegisterIPRequest
			record core.AssetRecord
		)

		BeforeEach(func() {
			req = core.RegisterIPRequest{TokenContract: nft, TokenID: big.NewInt(42)}
			fakeTx.SubmitAndConfirmReturns(newReceipt("0x0a", ipRegisteredLog(42)), nil)
		})

		JustBeforeEach(func() {
			record, err = registrar.RegisterIP(ctx, req)
		})

		When("the registration event is present", func() {
			It("should return and stores the registered asset", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.IPID).To(Equal(ipID.Hex()))
				Expect(record.ChainID).To(Equal("1315"))
				Expect(record.TokenID).To(Equal("42"))
				Expect(record.RegistrationTx).To(Equal(common.HexToHash("0x0a").Hex()))

				op := submitted(0)
				Expect(op.Label).To(Equal("register_ip"))
				Expect(op.To).To(Equal(addresses.IPAssetRegistry))
				Expect(op.Data).To(Equal(pack(contracts.RoleIPAssetRegistry, "register", big.NewInt(1315), nft, big.NewInt(42))))

				Expect(fakeRepo.SaveAssetCallCount()).To(Equal(1))
				_, saved := fakeRepo.SaveAssetArgsForCall(0)
				Expect(saved.IPID).To(Equal(ipID.Hex()))
				Expect(saved.TokenContract).To(Equal(nft.Hex()))
				Expect(fakeTx.CallCallCount()).To(Equal(0))
			})
		})

		When("the request names another chain", func() {
			BeforeEach(func() {
				req.ChainID = big.NewInt(1)
			})

			It("should register for that chain", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ChainID).To(Equal("1"))
				Expect(submitted(0).Data).To(Equal(pack(contracts.RoleIPAssetRegistry, "register", big.NewInt(1), nft, big.NewInt(42))))
			})
		})

		When("the registration event is absent", func() {
			BeforeEach(func() {
				fakeTx.SubmitAndConfirmReturns(newReceipt("0x0a"), nil)
				fakeTx.CallReturns(packOutput(contracts.RoleIPAssetRegistry, "ipId", ipID), nil)
			})

			It("should read the ip id from the registry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.IPID).To(Equal(ipID.Hex()))

				_, to, data := fakeTx.CallArgsForCall(0)
				Expect(to).To(Equal(addresses.IPAssetRegistry))
				Expect(data).To(Equal(pack(contracts.RoleIPAssetRegistry, "ipId", big.NewInt(1315), nft, big.NewInt(42))))
			})
		})

		When("the registry returns the zero address", func() {
			BeforeEach(func() {
				fakeTx.SubmitAndConfirmReturns(newReceipt("0x0a"), nil)
				fakeTx.CallReturns(packOutput(contracts.RoleIPAssetRegistry, "ipId", common.Address{}), nil)
			})

			It("should return ErrUnexpectedCallValue", func() {
				Expect(err).To(MatchError(core.ErrUnexpectedCallValue))
				Expect(fakeRepo.SaveAssetCallCount()).To(Equal(0))
			})
		})

		When("the token id is missing", func() {
			BeforeEach(func() {
				req.TokenID = nil
			})

			It("should reject the request before submitting", func() {
				Expect(err).To(MatchError(core.ErrInvalidRequest))
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(0))
			})
		})

		When("metadata is given", func() {
			BeforeEach(func() {
				req.Metadata = map[string]any{"title": "Ava"}
				fakePinner.PinJSONReturns("bafymeta", nil)
			})

			It("should pin it and stores its uri", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.MetadataURI).To(Equal("ipfs://bafymeta"))

				_, name, content := fakePinner.PinJSONArgsForCall(0)
				Expect(name).To(Equal("ip_metadata_" + nft.Hex() + "_42"))
				Expect(content).To(Equal(req.Metadata))
			})

			When("pinning fails", func() {
				BeforeEach(func() {
					fakePinner.PinJSONReturns("", testErr)
				})

				It("should return the error before submitting", func() {
					Expect(err).To(MatchError(testErr))
					Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(0))
				})
			})

			When("no pinner is configured", func() {
				BeforeEach(func() {
					pinner = nil
				})

				It("should return ErrPinningUnavailable", func() {
					Expect(err).To(MatchError(core.ErrPinningUnavailable))
					Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(0))
				})
			})
		})
	})

	Describe("RegisterLicenseTerms", func() {
		var (
			terms contracts.PILTerms
			id    *big.Int
		)

		BeforeEach(func() {
			terms = core.CommercialRemixTerms(addresses)
		})

		JustBeforeEach(func() {
			id, err = registrar.RegisterLicenseTerms(ctx, terms)
		})

		When("the terms are new", func() {
			BeforeEach(func() {
				fakeTx.SubmitAndConfirmReturns(newReceipt("0x0b", &types.Log{
					Address: addresses.PILTemplate,
					Topics: []common.Hash{
						termsID,
						common.BigToHash(big.NewInt(7)),
						common.BytesToHash(addresses.PILTemplate.Bytes()),
					},
				}), nil)
			})

			It("should return the id from the event", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id.Int64()).To(Equal(int64(7)))

				op := submitted(0)
				Expect(op.Label).To(Equal("register_license_terms"))
				Expect(op.To).To(Equal(addresses.PILTemplate))
				Expect(op.Data).To(Equal(pack(contracts.RoleLicenseTemplate, "registerLicenseTerms", terms)))
			})
		})

		When("the terms were registered before", func() {
			BeforeEach(func() {
				fakeTx.SubmitAndConfirmReturns(newReceipt("0x0b"), nil)
				fakeTx.CallReturns(packOutput(contracts.RoleLicenseTemplate, "getLicenseTermsId", big.NewInt(3)), nil)
			})

			It("should look up the existing id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id.Int64()).To(Equal(int64(3)))
				_, to, data := fakeTx.CallArgsForCall(0)
				Expect(to).To(Equal(addresses.PILTemplate))
				Expect(data).To(Equal(pack(contracts.RoleLicenseTemplate, "getLicenseTermsId", terms)))
			})
		})

		When("the template does not know the terms", func() {
			BeforeEach(func() {
				fakeTx.SubmitAndConfirmReturns(newReceipt("0x0b"), nil)
				fakeTx.CallReturns(packOutput(contracts.RoleLicenseTemplate, "getLicenseTermsId", big.NewInt(0)), nil)
			})

			It("should report an unexpected call value", func() {
				Expect(err).To(MatchError(core.ErrUnexpectedCallValue))
				Expect(errors.Is(err, ethereum.ErrLogNotFound)).To(BeFalse())
			})
		})

		When("the minting fee is missing", func() {
			BeforeEach(func() {
				terms.MintingFee = nil
			})

			It("should reject the terms", func() {
				Expect(err).To(MatchError(core.ErrInvalidRequest))
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(0))
			})
		})
	})

	Describe("CommercialRemixTerms", func() {
		It("should use no fee, a 10% share and the deployment's royalty policy", func() {
			terms := core.CommercialRemixTerms(addresses)
			Expect(terms.MintingFee.Sign()).To(Equal(0))
			Expect(terms.CommercialRevShare.Int64()).To(Equal(int64(10_000_000)))
			Expect(terms.RoyaltyPolicy).To(Equal(addresses.RoyaltyPolicy))
			Expect(terms.CurrencyToken).To(Equal(addresses.CurrencyToken))
		})
	})

	Describe("AttachLicenseTerms", func() {
		BeforeEach(func() {
			fakeTx.SubmitAndConfirmReturns(newReceipt("0x0c"), nil)
		})

		It("should attach through the licensing module with an approval", func() {
			err = registrar.AttachLicenseTerms(ctx, ipID, nft, big.NewInt(7))
			Expect(err).NotTo(HaveOccurred())

			op := submitted(0)
			Expect(op.Label).To(Equal("attach_license_terms"))
			Expect(op.To).To(Equal(addresses.LicensingModule))
			Expect(op.Data).To(Equal(pack(contracts.RoleLicensingModule, "attachLicenseTerms", ipID, addresses.PILTemplate, big.NewInt(7))))
			Expect(op.Approval).To(Equal(&ethereum.Approval{Token: nft, Operator: addresses.LicensingModule}))
			Expect(fakeRepo.SaveAssetCallCount()).To(Equal(0))
		})

		When("the asset is in the ledger", func() {
			BeforeEach(func() {
				fakeRepo.GetAssetReturns(repository.IPAsset{IPID: ipID.Hex(), TokenID: "42"}, nil)
			})

			It("should store the attached terms", func() {
				err = registrar.AttachLicenseTerms(ctx, ipID, nft, big.NewInt(7))
				Expect(err).NotTo(HaveOccurred())

				_, requested := fakeRepo.GetAssetArgsForCall(0)
				Expect(requested).To(Equal(ipID.Hex()))
				_, saved := fakeRepo.SaveAssetArgsForCall(0)
				Expect(saved.LicenseTermsID).To(Equal("7"))
				Expect(saved.TokenID).To(Equal("42"))
			})
		})

		When("the terms id is missing", func() {
			It("should reject the request", func() {
				err = registrar.AttachLicenseTerms(ctx, ipID, nft, nil)
				Expect(err).To(MatchError(core.ErrInvalidRequest))
			})
		})
	})

	Describe("MintLicenseTokens", func() {
		var (
			req core.MintLicenseRequest
			ids []*big.Int
		)

		BeforeEach(func() {
			req = core.MintLicenseRequest{LicensorIPID: ipID, LicenseTermsID: big.NewInt(7)}
			fakeTx.SubmitAndConfirmReturns(newReceipt("0x0d",
				transferLog(nft, account, transferID, 1),
				transferLog(addresses.LicenseToken, account, transferID, 100),
				transferLog(addresses.LicenseToken, account, transferID, 101),
			), nil)
		})

		JustBeforeEach(func() {
			ids, err = registrar.MintLicenseTokens(ctx, req)
		})

		It("should mint one token to the account by default", func() {
			Expect(err).NotTo(HaveOccurred())

			op := submitted(0)
			Expect(op.Label).To(Equal("mint_license_tokens"))
			Expect(op.To).To(Equal(addresses.LicensingModule))
			Expect(op.Data).To(Equal(pack(contracts.RoleLicensingModule, "mintLicenseTokens",
				ipID, addresses.PILTemplate, big.NewInt(7), big.NewInt(1), account, "", big.NewInt(0), big.NewInt(0))))
		})

		It("should return the license token ids in mint order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(HaveLen(2))
			Expect(ids[0].Int64()).To(Equal(int64(100)))
			Expect(ids[1].Int64()).To(Equal(int64(101)))
		})

		When("no license token is transferred", func() {
			BeforeEach(func() {
				fakeTx.SubmitAndConfirmReturns(newReceipt("0x0d"), nil)
			})

			It("should return ErrLogNotFound", func() {
				Expect(err).To(MatchError(ethereum.ErrLogNotFound))
			})
		})

		When("the terms id is missing", func() {
			BeforeEach(func() {
				req.LicenseTermsID = nil
			})

			It("should reject the request", func() {
				Expect(err).To(MatchError(core.ErrInvalidRequest))
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(0))
			})
		})
	})

	Describe("RegisterDerivative", func() {
		var tokenIDs []*big.Int

		BeforeEach(func() {
			tokenIDs = []*big.Int{big.NewInt(100), big.NewInt(101)}
			fakeTx.SubmitAndConfirmReturns(newReceipt("0x0e"), nil)
			fakeRepo.GetAssetReturns(repository.IPAsset{IPID: ipID.Hex()}, nil)
		})

		It("should burn the license tokens through the licensing module", func() {
			err = registrar.RegisterDerivative(ctx, ipID, nft, tokenIDs)
			Expect(err).NotTo(HaveOccurred())

			op := submitted(0)
			Expect(op.Label).To(Equal("register_derivative"))
			Expect(op.Data).To(Equal(pack(contracts.RoleLicensingModule, "registerDerivativeWithLicenseTokens",
				ipID, tokenIDs, "", big.NewInt(0))))
			Expect(op.Approval).To(Equal(&ethereum.Approval{Token: nft, Operator: addresses.LicensingModule}))

			_, saved := fakeRepo.SaveAssetArgsForCall(0)
			Expect(saved.LicenseTokenIDs).To(Equal("100,101"))
		})

		When("no license token is given", func() {
			It("should reject the request", func() {
				err = registrar.RegisterDerivative(ctx, ipID, nft, nil)
				Expect(err).To(MatchError(core.ErrInvalidRequest))
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(0))
			})
		})
	})

	Describe("CreateDerivative", func() {
		var (
			req    core.DerivativeRequest
			record core.AssetRecord
			parent common.Address
		)

		BeforeEach(func() {
			parent = common.HexToAddress("0xDDDD000000000000000000000000000000000004")
			req = core.DerivativeRequest{
				ParentIPID:     parent,
				LicenseTermsID: big.NewInt(5),
				NFTContract:    nft,
				Name:           "Sunset over Story",
				Description:    "fan art",
				Image:          []byte("png"),
			}

			fakePinner.PinFileReturns("bafyimage", nil)
			fakePinner.PinJSONReturns("bafymeta", nil)
			fakePoster.PostTweetReturns("tweet-1", nil)
			fakeTx.SubmitAndConfirmStub = func(_ context.Context, op ethereum.Operation) (*types.Receipt, error) {
				switch op.Label {
				case "mint_nft":
					return newReceipt("0x01", transferLog(nft, account, transferID, 42)), nil
				case "register_ip":
					return newReceipt("0x02", ipRegisteredLog(42)), nil
				case "mint_license_tokens":
					return newReceipt("0x03", transferLog(addresses.LicenseToken, account, transferID, 900)), nil
				case "register_derivative":
					return newReceipt("0x04"), nil
				}
				return nil, testErr
			}
		})

		JustBeforeEach(func() {
			record, err = registrar.CreateDerivative(ctx, req)
		})

		It("should run the workflow steps in order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(4))
			Expect(submitted(0).Label).To(Equal("mint_nft"))
			Expect(submitted(1).Label).To(Equal("register_ip"))
			Expect(submitted(2).Label).To(Equal("mint_license_tokens"))
			Expect(submitted(3).Label).To(Equal("register_derivative"))
			Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(4))
		})

		It("should pin the image and the metadata pointing at it", func() {
			Expect(err).NotTo(HaveOccurred())

			_, imageName, _ := fakePinner.PinFileArgsForCall(0)
			Expect(imageName).To(Equal("sunset_over_story.png"))

			_, metadataName, content := fakePinner.PinJSONArgsForCall(0)
			Expect(metadataName).To(Equal("sunset_over_story_metadata"))
			metadata, ok := content.(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(metadata).To(HaveKeyWithValue("image", "ipfs://bafyimage"))
			Expect(metadata).To(HaveKeyWithValue("parent_ip_id", parent.Hex()))
			Expect(metadata).To(HaveKeyWithValue("license_terms_id", "5"))

			Expect(submitted(0).Data).To(Equal(pack(contracts.RoleERC721, "mint", account, "ipfs://bafymeta")))
		})

		It("should link the child to the parent with the minted license", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(submitted(2).Data).To(Equal(pack(contracts.RoleLicensingModule, "mintLicenseTokens",
				parent, addresses.PILTemplate, big.NewInt(5), big.NewInt(1), account, "", big.NewInt(0), big.NewInt(0))))
			Expect(submitted(3).Data).To(Equal(pack(contracts.RoleLicensingModule, "registerDerivativeWithLicenseTokens",
				ipID, []*big.Int{big.NewInt(900)}, "", big.NewInt(0))))
		})

		It("should return and stores the full derivative record", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.IPID).To(Equal(ipID.Hex()))
			Expect(record.TokenID).To(Equal("42"))
			Expect(*record.ParentIPID).To(Equal(parent.Hex()))
			Expect(record.LicenseTermsID).To(Equal("5"))
			Expect(record.LicenseTokenIDs).To(Equal([]string{"900"}))
			Expect(record.NFTMetadataURI).To(Equal("ipfs://bafymeta"))
			Expect(record.AnnouncementID).To(Equal("tweet-1"))

			_, saved := fakeRepo.SaveAssetArgsForCall(fakeRepo.SaveAssetCallCount() - 1)
			Expect(saved.AnnouncementID).To(Equal("tweet-1"))
			Expect(saved.LicenseTokenIDs).To(Equal("900"))
		})

		It("should announce the derivative", func() {
			Expect(err).NotTo(HaveOccurred())
			_, text := fakePoster.PostTweetArgsForCall(0)
			Expect(text).To(ContainSubstring("Sunset over Story"))
			Expect(text).To(ContainSubstring("/ip/" + ipID.Hex()))
			Expect(text).To(ContainSubstring("https://gateway.test/ipfs/bafyimage"))
		})

		When("the announcement fails", func() {
			BeforeEach(func() {
				fakePoster.PostTweetReturns("", testErr)
			})

			It("should still return the registered derivative", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.IPID).To(Equal(ipID.Hex()))
				Expect(record.AnnouncementID).To(BeEmpty())
			})
		})

		When("no poster is configured", func() {
			BeforeEach(func() {
				poster = nil
			})

			It("should skip the announcement", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakePoster.PostTweetCallCount()).To(Equal(0))
			})
		})

		When("minting the parent license fails", func() {
			BeforeEach(func() {
				stub := fakeTx.SubmitAndConfirmStub
				fakeTx.SubmitAndConfirmStub = func(ctx context.Context, op ethereum.Operation) (*types.Receipt, error) {
					if op.Label == "mint_license_tokens" {
						return nil, ethereum.ErrConfirmationTimeout
					}
					return stub(ctx, op)
				}
			})

			It("should stop before linking", func() {
				Expect(err).To(MatchError(ethereum.ErrConfirmationTimeout))
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(3))
				Expect(fakePoster.PostTweetCallCount()).To(Equal(0))
			})
		})

		When("pinning the image fails", func() {
			BeforeEach(func() {
				fakePinner.PinFileReturns("", testErr)
			})

			It("should send no transaction", func() {
				Expect(err).To(MatchError(testErr))
				Expect(fakeTx.SubmitAndConfirmCallCount()).To(Equal(0))
			})
		})

		When("no pinner is configured", func() {
			BeforeEach(func() {
				pinner = nil
			})

			It("should return ErrPinningUnavailable", func() {
				Expect(err).To(MatchError(core.ErrPinningUnavailable))
			})
		})

		When("the image is empty", func() {
			BeforeEach(func() {
				req.Image = nil
			})

			It("should reject the request", func() {
				Expect(err).To(MatchError(core.ErrInvalidRequest))
				Expect(fakePinner.PinFileCallCount()).To(Equal(0))
			})
		})
	})
})
