package main

import (
	. "github.com/onsi/gomega"
	"github.com/varfrog/helloadapter/pkg/sdk"
	"path/filepath"
	"testing"
)

func newValidRunConfig(t *testing.T) runConfig {
	return runConfig{
		TLSCertsDir:     t.TempDir(),
		ProxyHost:       "localhost",
		ProxyPort:       6663,
		MaxMessageBytes: 1000,
		MaxItems:        100,
	}
}

func TestValidateRunConfig(t *testing.T) {
	g := NewWithT(t)

	config := newValidRunConfig(t)
	g.Expect(validateRunConfig(config)).To(Succeed())

	config.TLSCertsDir = filepath.Join(t.TempDir(), "missing")
	g.Expect(validateRunConfig(config)).To(MatchError(ContainSubstring("cannot stat the TLS certs dir")))

	config.ProxyPort = 70000
	g.Expect(validateRunConfig(config)).To(MatchError(ContainSubstring("out of range")))
}

func TestValidateRunConfig_SkipVerifyDoesNotNeedTheCertsDir(t *testing.T) {
	g := NewWithT(t)

	config := newValidRunConfig(t)
	config.TLSCertsDir = filepath.Join(t.TempDir(), "missing")
	config.TLSSkipVerify = true

	g.Expect(validateRunConfig(config)).To(Succeed())
}

func TestBuildTLSConfig_SkipVerifyDoesNotReadTheCA(t *testing.T) {
	g := NewWithT(t)

	config := newValidRunConfig(t)
	config.TLSCertsDir = filepath.Join(t.TempDir(), "missing")
	config.TLSSkipVerify = true

	tlsConfig, err := buildTLSConfig(config)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(tlsConfig.InsecureSkipVerify).To(BeTrue())
	g.Expect(tlsConfig.RootCAs).To(BeNil())
	g.Expect(tlsConfig.NextProtos).To(Equal([]string{sdk.ALPN}))
}

func TestBuildTLSConfig_NeedsTheCA(t *testing.T) {
	g := NewWithT(t)

	_, err := buildTLSConfig(newValidRunConfig(t)) // Empty dir, no ca.pem
	g.Expect(err).To(MatchError(ContainSubstring("GetRootCertPool")))
}
