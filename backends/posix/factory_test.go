// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package posix

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/choria-io/crosszip/model"
	"github.com/choria-io/crosszip/model/modelmocks"
)

var _ = Describe("Factory", func() {
	var (
		mockctl *gomock.Controller
		logger  *modelmocks.MockLogger
		f       *factory
	)

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		logger = modelmocks.NewLogger(mockctl)
		f = &factory{}
	})

	AfterEach(func() {
		mockctl.Finish()
	})

	Describe("Name", func() {
		It("Should return provider name", func() {
			Expect(f.Name()).To(Equal(ProviderName))
		})
	})

	Describe("Executables", func() {
		It("Should list zip and unzip", func() {
			Expect(f.Executables()).To(Equal([]string{"zip", "unzip"}))
		})
	})

	Describe("New", func() {
		It("Should create a new provider", func() {
			provider, err := f.New(logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(provider.Name()).To(Equal(ProviderName))
		})
	})

	Describe("IsManageable", func() {
		It("Should only manage posix platforms", func() {
			manageable, prio, err := f.IsManageable(model.PlatformPosix)
			Expect(err).ToNot(HaveOccurred())
			Expect(manageable).To(BeTrue())
			Expect(prio).To(Equal(1))

			manageable, _, err = f.IsManageable(model.PlatformWindows)
			Expect(err).ToNot(HaveOccurred())
			Expect(manageable).To(BeFalse())
		})
	})
})
