package api

// ColorResponse is a single reference-data color.
type ColorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VehicleRequest is the body of POST /api/vehicles and PUT /api/vehicles/{id}.
type VehicleRequest struct {
	ColorID int64  `json:"colorId"`
	Plate   string `json:"plate"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Seats   int    `json:"seats"`
}

// VehicleResponse describes a vehicle owned by the calling user.
type VehicleResponse struct {
	ID      string `json:"id"`
	ColorID int64  `json:"colorId"`
	Color   string `json:"color"`
	Plate   string `json:"plate"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Seats   int    `json:"seats"`
}

// ErrorResponse is the error body of non-auth endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
