package handler

const (
	oopsErr           = "Oops! Something went wrong. Please try again later."
	userExistsMsg     = "User already exists!"
	accountCreatedMsg = "Account successfully created"
	invalidLoginMsg   = "Invalid username or password!"
	invalidSignupMsg  = "Please check the form: "
	uploadTooLargeMsg = "The uploaded file is too large."
	notAnImageMsg     = "The uploaded file is not a readable image."
	badUploadMsg      = "The upload could not be read."
	imageNotFoundMsg  = "Image not found."
)
