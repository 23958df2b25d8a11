package ethereum_test

import (
	"context"
	"errors"
	"ipregistrar/internal/contracts"
	"ipregistrar/internal/ethereum"
	"ipregistrar/internal/ethereum/fake"
	"math/big"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// revertError mimics a node error that carries revert data.
type revertError struct{}

func (revertError) Error() string          { return "execution reverted" }
func (revertError) ErrorData() interface{} { return "0x08c379a0" }

var _ = Describe("Pipeline", func() {
	var (
		pipeline   *ethereum.Pipeline
		fakeClient *fake.EthClient
		account    *ethereum.Account
		registry   *contracts.Registry
		chainID    *big.Int
		opts       ethereum.Options
		ctx        context.Context
		testErr    error
		target     common.Address
		op         ethereum.Operation
		receipt    *types.Receipt
		err        error
	)

	sentTx := func(i int) *types.Transaction {
		_, tx := fakeClient.SendTransactionArgsForCall(i)
		return tx
	}

	BeforeEach(func() {
		key, keyErr := crypto.GenerateKey()
		Expect(keyErr).NotTo(HaveOccurred())
		account, err = ethereum.NewAccount(common.Bytes2Hex(crypto.FromECDSA(key)))
		Expect(err).NotTo(HaveOccurred())

		registry, err = contracts.NewRegistry()
		Expect(err).NotTo(HaveOccurred())

		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		testErr = errors.New("test error")
		chainID = big.NewInt(1315)
		target = common.HexToAddress("0x1111111111111111111111111111111111111111")
		opts = ethereum.Options{
			FeeModel:            ethereum.FeeModelDynamic,
			ConfirmationTimeout: 200 * time.Millisecond,
			PollInterval:        time.Millisecond,
			RetryAttempts:       1,
			RetryDelay:          time.Millisecond,
		}
		op = ethereum.Operation{
			Label: "register_ip",
			To:    target,
			Data:  []byte{0xde, 0xad, 0xbe, 0xef},
		}

		fakeClient.PendingNonceAtReturns(5, nil)
		fakeClient.SuggestGasTipCapReturns(big.NewInt(100_000_000), nil)
		fakeClient.SuggestGasPriceReturns(big.NewInt(3_000_000_000), nil)
		fakeClient.HeaderByNumberReturns(&types.Header{
			Number:  big.NewInt(100),
			BaseFee: big.NewInt(1_000_000_000),
		}, nil)
		fakeClient.EstimateGasReturns(100_000, nil)
		fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				TxHash:      hash,
				BlockNumber: big.NewInt(101),
				GasUsed:     90_000,
			}, nil
		}
	})

	JustBeforeEach(func() {
		pipeline = ethereum.NewPipeline(zap.NewNop().Sugar(), fakeClient, account, registry, chainID, opts)
	})

	Describe("SubmitAndConfirm", func() {
		JustBeforeEach(func() {
			receipt, err = pipeline.SubmitAndConfirm(ctx, op)
		})

		When("the node prices a dynamic fee transaction", func() {
			It("should submit a signed transaction with a doubled base fee cap", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))

				tx := sentTx(0)
				Expect(tx.Type()).To(Equal(uint8(types.DynamicFeeTxType)))
				Expect(tx.Nonce()).To(Equal(uint64(5)))
				Expect(tx.GasTipCap()).To(Equal(big.NewInt(100_000_000)))
				Expect(tx.GasFeeCap()).To(Equal(big.NewInt(2_100_000_000)))
				Expect(tx.Gas()).To(Equal(uint64(120_000)))
				Expect(tx.ChainId()).To(Equal(chainID))
				Expect(*tx.To()).To(Equal(target))
				Expect(tx.Data()).To(Equal(op.Data))

				sender, senderErr := types.Sender(types.LatestSignerForChainID(chainID), tx)
				Expect(senderErr).NotTo(HaveOccurred())
				Expect(sender).To(Equal(account.Address()))

				Expect(receipt.TxHash).To(Equal(tx.Hash()))
			})
		})

		When("the operation carries a gas limit", func() {
			BeforeEach(func() {
				op.GasLimit = 500_000
			})

			It("should not estimate gas", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.EstimateGasCallCount()).To(BeZero())
				Expect(sentTx(0).Gas()).To(Equal(uint64(500_000)))
			})
		})

		When("the legacy fee model is configured", func() {
			BeforeEach(func() {
				opts.FeeModel = ethereum.FeeModelLegacy
			})

			It("should price the transaction with the suggested gas price", func() {
				Expect(err).NotTo(HaveOccurred())
				tx := sentTx(0)
				Expect(tx.Type()).To(Equal(uint8(types.LegacyTxType)))
				Expect(tx.GasPrice()).To(Equal(big.NewInt(3_000_000_000)))
				Expect(fakeClient.SuggestGasTipCapCallCount()).To(BeZero())
				Expect(fakeClient.HeaderByNumberCallCount()).To(BeZero())
			})
		})

		When("the approval is already granted", func() {
			BeforeEach(func() {
				op.Approval = &ethereum.Approval{
					Token:    common.HexToAddress("0x2222222222222222222222222222222222222222"),
					Operator: target,
				}
				fakeClient.CallContractReturns(common.LeftPadBytes([]byte{1}, 32), nil)
			})

			It("should submit only the operation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.CallContractCallCount()).To(Equal(1))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
				Expect(*sentTx(0).To()).To(Equal(target))
			})
		})

		When("the approval is missing", func() {
			var token common.Address

			BeforeEach(func() {
				token = common.HexToAddress("0x2222222222222222222222222222222222222222")
				op.Approval = &ethereum.Approval{
					Token:    token,
					Operator: target,
				}
				fakeClient.CallContractReturns(make([]byte, 32), nil)
				fakeClient.PendingNonceAtReturns(7, nil)
			})

			It("should confirm an approval transaction before the operation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(2))

				approval := sentTx(0)
				Expect(*approval.To()).To(Equal(token))
				Expect(approval.Gas()).To(Equal(uint64(100_000)))
				Expect(approval.Nonce()).To(Equal(uint64(7)))

				expected, packErr := registry.Pack(contracts.RoleERC721, "setApprovalForAll", target, true)
				Expect(packErr).NotTo(HaveOccurred())
				Expect(approval.Data()).To(Equal(expected))

				main := sentTx(1)
				Expect(*main.To()).To(Equal(target))
				Expect(main.Nonce()).To(Equal(uint64(8)))

				_, approvalHash := fakeClient.TransactionReceiptArgsForCall(0)
				Expect(approvalHash).To(Equal(approval.Hash()))
			})
		})

		When("the approval check fails", func() {
			BeforeEach(func() {
				op.Approval = &ethereum.Approval{
					Token:    common.HexToAddress("0x2222222222222222222222222222222222222222"),
					Operator: target,
				}
				fakeClient.CallContractReturns(nil, testErr)
			})

			It("should not submit anything", func() {
				Expect(err).To(MatchError(ethereum.ErrRPC))
				Expect(fakeClient.SendTransactionCallCount()).To(BeZero())
			})
		})

		When("the transaction reverts", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
					return &types.Receipt{
						Status:      types.ReceiptStatusFailed,
						TxHash:      hash,
						BlockNumber: big.NewInt(101),
					}, nil
				}
			})

			It("should return the receipt with a revert error", func() {
				Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
				Expect(err.Error()).To(ContainSubstring("register_ip"))
				Expect(receipt).NotTo(BeNil())
				Expect(receipt.Status).To(Equal(types.ReceiptStatusFailed))
			})
		})

		When("the receipt never appears", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptStub = nil
				fakeClient.TransactionReceiptReturns(nil, goethereum.NotFound)
			})

			It("should time out", func() {
				Expect(err).To(MatchError(ethereum.ErrConfirmationTimeout))
				Expect(receipt).To(BeNil())
				Expect(fakeClient.TransactionReceiptCallCount()).To(BeNumerically(">", 1))
			})
		})

		When("the receipt lookup keeps failing", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptStub = nil
				fakeClient.TransactionReceiptReturns(nil, testErr)
			})

			It("should give up with an rpc error", func() {
				Expect(err).To(MatchError(ethereum.ErrRPC))
				Expect(err).To(MatchError(ContainSubstring(testErr.Error())))
			})
		})

		When("the latest block has no base fee", func() {
			BeforeEach(func() {
				fakeClient.HeaderByNumberReturns(&types.Header{Number: big.NewInt(100)}, nil)
			})

			It("should fail before submitting", func() {
				Expect(err).To(MatchError(ethereum.ErrBaseFeeUnavailable))
				Expect(fakeClient.SendTransactionCallCount()).To(BeZero())
			})
		})

		When("sending fails", func() {
			BeforeEach(func() {
				fakeClient.SendTransactionReturns(testErr)
			})

			It("should return an rpc error without polling", func() {
				Expect(err).To(MatchError(ethereum.ErrRPC))
				Expect(fakeClient.TransactionReceiptCallCount()).To(BeZero())
			})
		})

		When("gas estimation fails transiently", func() {
			BeforeEach(func() {
				opts.RetryAttempts = 3
				fakeClient.EstimateGasReturnsOnCall(0, 0, testErr)
				fakeClient.EstimateGasReturnsOnCall(1, 50_000, nil)
			})

			It("should retry the estimate", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.EstimateGasCallCount()).To(Equal(2))
				Expect(sentTx(0).Gas()).To(Equal(uint64(60_000)))
			})
		})

		When("gas estimation reverts", func() {
			BeforeEach(func() {
				opts.RetryAttempts = 3
				fakeClient.EstimateGasReturns(0, revertError{})
			})

			It("should not retry", func() {
				Expect(err).To(MatchError(ethereum.ErrRPC))
				Expect(fakeClient.EstimateGasCallCount()).To(Equal(1))
				Expect(fakeClient.SendTransactionCallCount()).To(BeZero())
			})
		})
	})

	Describe("nonce management", func() {
		var nonces []uint64

		BeforeEach(func() {
			nonces = nil
			fakeClient.PendingNonceAtReturns(3, nil)
		})

		JustBeforeEach(func() {
			for i := 0; i < 3; i++ {
				_, err = pipeline.SubmitAndConfirm(ctx, op)
				Expect(err).NotTo(HaveOccurred())
				nonces = append(nonces, sentTx(i).Nonce())
			}
		})

		It("should never reuse a nonce when the node lags", func() {
			Expect(nonces).To(Equal([]uint64{3, 4, 5}))
		})

		When("the node catches up", func() {
			BeforeEach(func() {
				fakeClient.PendingNonceAtReturnsOnCall(0, 3, nil)
				fakeClient.PendingNonceAtReturnsOnCall(1, 9, nil)
				fakeClient.PendingNonceAtReturnsOnCall(2, 9, nil)
			})

			It("should follow the node", func() {
				Expect(nonces).To(Equal([]uint64{3, 9, 10}))
			})
		})
	})

	Describe("IsApproved", func() {
		var (
			approved bool
			approval ethereum.Approval
		)

		BeforeEach(func() {
			approval = ethereum.Approval{
				Token:    common.HexToAddress("0x2222222222222222222222222222222222222222"),
				Operator: target,
			}
			fakeClient.CallContractReturns(common.LeftPadBytes([]byte{1}, 32), nil)
		})

		JustBeforeEach(func() {
			approved, err = pipeline.IsApproved(ctx, approval)
		})

		It("should default the owner to the signing account", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(approved).To(BeTrue())

			_, msg, block := fakeClient.CallContractArgsForCall(0)
			Expect(block).To(BeNil())
			Expect(*msg.To).To(Equal(approval.Token))

			expected, packErr := registry.Pack(contracts.RoleERC721, "isApprovedForAll", account.Address(), target)
			Expect(packErr).NotTo(HaveOccurred())
			Expect(msg.Data).To(Equal(expected))
		})
	})
})

var _ = Describe("FeeCap", func() {
	tip := big.NewInt(100_000_000)

	DescribeTable("should add twice the base fee to the tip",
		func(baseFee *big.Int, expected *big.Int) {
			Expect(ethereum.FeeCap(tip, baseFee)).To(Equal(expected))
		},
		Entry("zero base fee", big.NewInt(0), big.NewInt(100_000_000)),
		Entry("one wei", big.NewInt(1), big.NewInt(100_000_002)),
		Entry("one gwei", big.NewInt(1_000_000_000), big.NewInt(2_100_000_000)),
		Entry("one ether", big.NewInt(1_000_000_000_000_000_000), big.NewInt(2_000_000_000_100_000_000)),
	)

	It("should not modify its inputs", func() {
		baseFee := big.NewInt(7)
		ethereum.FeeCap(tip, baseFee)
		Expect(baseFee).To(Equal(big.NewInt(7)))
		Expect(tip).To(Equal(big.NewInt(100_000_000)))
	})
})

var _ = Describe("WithGasMargin", func() {
	It("should add twenty percent", func() {
		Expect(ethereum.WithGasMargin(100_000)).To(Equal(uint64(120_000)))
		Expect(ethereum.WithGasMargin(0)).To(BeZero())
	})
})
