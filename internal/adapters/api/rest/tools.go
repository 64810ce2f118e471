package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/playmixer/scoring-api/pkg/authtools"
)

// checkAuth сверяет токен запроса с ожидаемым дайджестом.
func (s *Server) checkAuth(req *MethodRequest) bool {
	token := ""
	if req.Token != nil {
		token = *req.Token
	}

	if req.IsAdmin() {
		return authtools.VerifyAdmin(token, s.adminSalt)
	}

	account := ""
	if req.Account != nil {
		account = *req.Account
	}
	login := ""
	if req.Login != nil {
		login = *req.Login
	}

	return authtools.VerifyUser(token, account, login, s.salt)
}

// respondOK - успешный конверт {"code": 200, "response": ...}.
func respondOK(c *gin.Context, response any) {
	c.JSON(statusOK, gin.H{
		"code":     statusOK,
		"response": response,
	})
}

// respondError - конверт ошибки {"code": ..., "error": "..."}.
func respondError(c *gin.Context, code int, message string) {
	if message == "" {
		message = statusText[code]
	}
	c.JSON(code, gin.H{
		"code":  code,
		"error": message,
	})
}
