package api

// Register creates a new account. The backend sends the verification code to
// the registered email; the response carries only a confirmation message.
func (c *Client) Register(req RegisterRequest) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.Post("/register", req, &resp)
	return resp, err
}

// Verify confirms email ownership with the code the user received.
func (c *Client) Verify(accountID, code string) error {
	var resp struct {
		Message string `json:"message"`
	}
	return c.Post("/verify", VerifyRequest{AccountID: accountID, Code: code}, &resp)
}

// Login checks credentials and returns the account identity on success.
func (c *Client) Login(email, password string) (User, error) {
	var resp struct {
		User User `json:"user"`
	}
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	if err := c.Post("/login", body, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// Health pings the API root, returning the server's status message.
func (c *Client) Health() (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.Get("/", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
