package quichelper

import (
	"crypto/x509"
	"encoding/pem"
	"github.com/pkg/errors"
	"os"
	"path"
)

// GetRootCertPool builds a cert pool from ca.pem in certDirPath, used to verify the proxy.
func GetRootCertPool(certDirPath string) (*x509.CertPool, error) {
	caCertPath := path.Join(certDirPath, "ca.pem")
	caCertRaw, err := os.ReadFile(caCertPath)
	if err != nil {
		return nil, errors.Wrap(err, "os.ReadFile(caCertPath)")
	}

	block, _ := pem.Decode(caCertRaw)
	if block == nil {
		return nil, errors.Errorf("%s has no PEM data", caCertPath)
	}
	if block.Type != "CERTIFICATE" {
		return nil, errors.Errorf("%s: PEM type %q != CERTIFICATE", caCertPath, block.Type)
	}

	caCert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "x509.ParseCertificate")
	}

	certPool := x509.NewCertPool()
	certPool.AddCert(caCert)

	return certPool, nil
}
