package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// ChecksumAlgorithmMD5 is the algorithm name DSpace reports for bitstream
// checksums.
const ChecksumAlgorithmMD5 = "MD5"

// FileMD5 returns the hex-encoded MD5 digest of the file at path.
//
// DSpace stores an MD5 checksum for every bitstream; comparing it with the
// local digest after an upload confirms the content arrived intact.
func FileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening %s for checksum: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("error reading %s for checksum: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// ChecksumMatches compares a server-reported checksum with a local hex digest.
// Algorithms other than MD5 are not verified and always match.
func ChecksumMatches(algorithm, remote, local string) bool {
	if !strings.EqualFold(algorithm, ChecksumAlgorithmMD5) {
		return true
	}
	return strings.EqualFold(remote, local)
}
