package blogservice

const (
	// Error messages for blog service operations
	ErrFailedToListBlogs  = "failed to list blogs"
	ErrFailedToCreateBlog = "failed to create blog"
	ErrFailedToUpdateBlog = "failed to update blog"
	ErrFailedToDeleteBlog = "failed to delete blog"
	ErrRetrievingBlog     = "error retrieving blog"
	ErrRetrievingOwner    = "error retrieving blog owner"
)
