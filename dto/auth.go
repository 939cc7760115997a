// file: dto/auth.go
package dto

type SignInReq struct {
	Fid       uint64 `json:"fid"`
	Message   string `json:"message"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
}

type SignInResp struct {
	Token string `json:"token"`
	Fid   uint64 `json:"fid"`
}
