package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SlackSignatureVersion is the version prefix Slack puts in front of both
// the signed base string and the resulting signature.
const SlackSignatureVersion = "v0"

// SlackSignature computes the value Slack sends in X-Slack-Signature for
// a request with the given timestamp and raw body:
//
//	v0=hex(HMAC-SHA256(secret, "v0:<timestamp>:<body>"))
//
// Example usage:
//
//	sig := utils.SlackSignature("8f742231b10e8888abcd99yyyzzz85a5", "1531420618", body)
func SlackSignature(secret, timestamp string, body []byte) string {
	base := make([]byte, 0, len(SlackSignatureVersion)+len(timestamp)+len(body)+2)
	base = append(base, SlackSignatureVersion...)
	base = append(base, ':')
	base = append(base, timestamp...)
	base = append(base, ':')
	base = append(base, body...)

	return SlackSignatureVersion + "=" + hex.EncodeToString(hashString(base, secret))
}

// VerifySlackSignature reports whether signature matches the one computed
// for timestamp and body. The comparison runs in constant time.
func VerifySlackSignature(secret, timestamp string, body []byte, signature string) bool {
	expected := SlackSignature(secret, timestamp, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// hashString computes an HMAC-SHA256 digest of data keyed with hashKey.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
