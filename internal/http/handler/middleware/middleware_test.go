package middleware_test

import (
	"errors"
	"ipregistrar/internal/http/handler/middleware"
	"ipregistrar/internal/http/handler/middleware/fake"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w         *httptest.ResponseRecorder
		req       *http.Request
		requestID string
		subject   string
		calls     int
		next      http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/registrar/derivatives", nil)
		requestID, subject, calls = "", "", 0
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			requestID = middleware.RequestIDFrom(r.Context())
			subject, _ = r.Context().Value(middleware.SubjectKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		JustBeforeEach(func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
		})

		It("should generate an id and echo it", func() {
			Expect(requestID).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(requestID))
		})

		When("the caller sends an id", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.RequestIDHeader, "req-1")
			})

			It("should keep it", func() {
				Expect(requestID).To(Equal("req-1"))
			})
		})
	})

	Describe("Logging", func() {
		It("should pass the request through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, req)
			Expect(calls).To(Equal(1))
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("Authenticate", func() {
		var fakeAuthorizer *fake.Authorizer

		BeforeEach(func() {
			fakeAuthorizer = new(fake.Authorizer)
			fakeAuthorizer.AuthorizeReturns("user-1", nil)
		})

		JustBeforeEach(func() {
			middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeAuthorizer).Authenticate(next).ServeHTTP(w, req)
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.AuthTokenHeader, "token")
			})

			It("should store the subject for the handler", func() {
				Expect(calls).To(Equal(1))
				Expect(subject).To(Equal("user-1"))
				Expect(fakeAuthorizer.AuthorizeArgsForCall(0)).To(Equal("token"))
			})
		})

		When("the header is missing", func() {
			It("should return 401 without calling the handler", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("AUTH_TOKEN header is required"))
				Expect(calls).To(Equal(0))
				Expect(fakeAuthorizer.AuthorizeCallCount()).To(Equal(0))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.AuthTokenHeader, "token")
				fakeAuthorizer.AuthorizeReturns("", errors.New("expired"))
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(calls).To(Equal(0))
			})
		})
	})
})
