package service

import "errors"

var (
	ErrInternal = errors.New("internal server error")

	// Validation: the caller can fix the input and retry.
	ErrCommentEmpty    = errors.New("comment cannot be empty")
	ErrCommentTooLong  = errors.New("comment too long (max 2000 characters)")
	ErrNothingToUpdate = errors.New("nothing to update")

	// Permission: authenticated but not allowed to perform this mutation.
	ErrAccessDenied        = errors.New("access denied")
	ErrNotCommentAuthor    = errors.New("you can only edit your own comments")
	ErrCannotDeleteComment = errors.New("you can only delete your own comments")
	ErrPostNotPublished    = errors.New("post is not published")

	// Not found: the referenced entity no longer exists.
	ErrPostNotFound          = errors.New("post not found")
	ErrCommentNotFound       = errors.New("comment not found")
	ErrParentCommentNotFound = errors.New("parent comment not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrTagNotFound           = errors.New("tag not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrWorkNotFound          = errors.New("work not found")

	ErrFileMustBeImage             = errors.New("file must be an image")
	ErrFileMustHaveAValidExtension = errors.New("file must have a valid extension")
	ErrFailedToUploadImageToCDN    = errors.New("failed to upload image to CDN")
)

// IsValidationError reports whether err is recoverable by correcting input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrCommentEmpty) ||
		errors.Is(err, ErrCommentTooLong) ||
		errors.Is(err, ErrNothingToUpdate) ||
		errors.Is(err, ErrFileMustBeImage) ||
		errors.Is(err, ErrFileMustHaveAValidExtension)
}

func IsPermissionError(err error) bool {
	return errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrNotCommentAuthor) ||
		errors.Is(err, ErrCannotDeleteComment) ||
		errors.Is(err, ErrPostNotPublished)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrParentCommentNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTagNotFound) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrWorkNotFound)
}
