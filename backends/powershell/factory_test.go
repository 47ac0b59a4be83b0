// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package powershell

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

	It("Should describe the backend", func() {
		Expect(f.Name()).To(Equal(ProviderName))
		Expect(f.Executables()).To(Equal([]string{"powershell.exe"}))

		provider, err := f.New(logger)
		Expect(err).ToNot(HaveOccurred())
		Expect(provider.Name()).To(Equal(ProviderName))
	})

	It("Should only manage windows platforms", func() {
		manageable, prio, err := f.IsManageable(model.PlatformWindows)
		Expect(err).ToNot(HaveOccurred())
		Expect(manageable).To(BeTrue())
		Expect(prio).To(Equal(1))

		manageable, _, err = f.IsManageable(model.PlatformPosix)
		Expect(err).ToNot(HaveOccurred())
		Expect(manageable).To(BeFalse())
	})
})
