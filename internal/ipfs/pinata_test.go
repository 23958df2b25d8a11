package ipfs_test

import (
	"context"
	"encoding/json"
	"io"
	"ipregistrar/internal/ipfs"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("PinataClient", func() {
	var (
		server  *httptest.Server
		handler http.HandlerFunc
		client  *ipfs.PinataClient
		ctx     context.Context
		cid     string
		err     error
	)

	BeforeEach(func() {
		ctx = context.Background()
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"IpfsHash":"bafycid","PinSize":12,"Timestamp":"2024-01-01T00:00:00Z"}`))
		}
	})

	JustBeforeEach(func() {
		server = httptest.NewServer(handler)
		DeferCleanup(server.Close)

		client, err = ipfs.NewPinataClient(zap.NewNop().Sugar(), ipfs.Config{
			JWT:        "test-jwt",
			APIURL:     server.URL + "/",
			GatewayURL: "https://gateway.example/ipfs/",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("PinJSON", func() {
		var (
			path    string
			auth    string
			payload map[string]any
		)

		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				path = r.URL.Path
				auth = r.Header.Get("Authorization")
				Expect(json.NewDecoder(r.Body).Decode(&payload)).To(Succeed())
				_, _ = w.Write([]byte(`{"IpfsHash":"bafyjson"}`))
			}
		})

		JustBeforeEach(func() {
			cid, err = client.PinJSON(ctx, "ip_metadata", map[string]string{"title": "Ava"})
		})

		It("should wrap the content with its pin name", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cid).To(Equal("bafyjson"))
			Expect(path).To(Equal("/pinning/pinJSONToIPFS"))
			Expect(auth).To(Equal("Bearer test-jwt"))
			Expect(payload).To(HaveKeyWithValue("pinataContent", map[string]any{"title": "Ava"}))
			Expect(payload).To(HaveKeyWithValue("pinataMetadata", map[string]any{"name": "ip_metadata"}))
		})

		When("the service rejects the request", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"error":"invalid jwt"}`))
				}
			})

			It("should return a pinning error with the status", func() {
				Expect(err).To(MatchError(ipfs.ErrPinningFailed))
				Expect(err.Error()).To(ContainSubstring("401"))
				Expect(cid).To(BeEmpty())
			})
		})

		When("the response has no hash", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{}`))
				}
			})

			It("should return a pinning error", func() {
				Expect(err).To(MatchError(ipfs.ErrPinningFailed))
			})
		})
	})

	Describe("PinFile", func() {
		var (
			fileName string
			content  string
			metadata string
		)

		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				Expect(r.URL.Path).To(Equal("/pinning/pinFileToIPFS"))
				Expect(r.ParseMultipartForm(1 << 20)).To(Succeed())

				file, header, formErr := r.FormFile("file")
				Expect(formErr).NotTo(HaveOccurred())
				defer file.Close()
				raw, readErr := io.ReadAll(file)
				Expect(readErr).NotTo(HaveOccurred())

				fileName = header.Filename
				content = string(raw)
				metadata = r.FormValue("pinataMetadata")
				_, _ = w.Write([]byte(`{"IpfsHash":"bafyfile"}`))
			}
		})

		JustBeforeEach(func() {
			cid, err = client.PinFile(ctx, "fan_art.png", strings.NewReader("png-bytes"))
		})

		It("should upload the file as multipart form data", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cid).To(Equal("bafyfile"))
			Expect(fileName).To(Equal("fan_art.png"))
			Expect(content).To(Equal("png-bytes"))
			Expect(metadata).To(MatchJSON(`{"name":"fan_art.png"}`))
		})
	})

	Describe("URIs", func() {
		It("should build protocol and gateway addresses", func() {
			Expect(client.URI("bafy")).To(Equal("ipfs://bafy"))
			Expect(client.GatewayURL("bafy")).To(Equal("https://gateway.example/ipfs/bafy"))
		})
	})
})

var _ = Describe("NewPinataClient", func() {
	It("should require a jwt", func() {
		_, err := ipfs.NewPinataClient(zap.NewNop().Sugar(), ipfs.Config{JWT: "  "})
		Expect(err).To(MatchError(ipfs.ErrMissingJWT))
	})
})
