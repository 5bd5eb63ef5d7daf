package routes

var (
	SignupDurationSecondsBuckets     = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	LoginDurationSecondsBuckets      = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	BlogCreateDurationSecondsBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	// API route constants
	BlogsRouteAPI     = "/blogs"
	BlogsByIDRouteAPI = "/blogs/{id}"
	BlogStatsRouteAPI = "/blogs/stats"
	UsersRouteAPI     = "/users"
	LoginRouteAPI     = "/login"
	MetricsRouteAPI   = "/metrics"

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	// Error messages
	ErrInvalidContentType       = "content-Type must be application/json"
	ErrInvalidRequestBody       = "invalid request body"
	ErrValidationFailed         = "data validation failed"
	ErrFailedToRegisterUser     = "failed to register user"
	ErrFailedToEncodeResponse   = "failed to encode response"
	ErrFailedToGenerateToken    = "failed to generate session token"
	ErrInvalidCredentials       = "invalid username or password"
	ErrInvalidContentTypeFormat = "invalid content-type: %s"

	// metrics constants
	SignupRequestsTotal           = "signup_requests_total"
	SignupRequestsTotalHelp       = "Total number of signup requests received"
	SignupSuccessTotal            = "signup_success_total"
	SignupSuccessTotalHelp        = "Total number of successful signup requests"
	SignupErrorsTotal             = "signup_errors_total"
	SignupErrorsTotalHelp         = "Total number of errors during signup requests"
	SignupDurationSeconds         = "signup_duration_seconds"
	SignupDurationSecondsHelp     = "Duration of signup requests in seconds"
	LoginRequestsTotal            = "login_requests_total"
	LoginRequestsTotalHelp        = "Total number of login requests received"
	LoginSuccessTotal             = "login_success_total"
	LoginSuccessTotalHelp         = "Total number of successful login requests"
	LoginFailedTotal              = "login_failed_total"
	LoginFailedTotalHelp          = "Total number of failed login requests"
	LoginDurationSeconds          = "login_duration_seconds"
	LoginDurationSecondsHelp      = "Duration of login requests in seconds"
	BlogCreateRequestsTotal       = "blog_create_requests_total"
	BlogCreateRequestsTotalHelp   = "Total number of blog creation requests received"
	BlogCreateSuccessTotal        = "blog_create_success_total"
	BlogCreateSuccessTotalHelp    = "Total number of successful blog creations"
	BlogCreateErrorsTotal         = "blog_create_errors_total"
	BlogCreateErrorsTotalHelp     = "Total number of errors during blog creation"
	BlogCreateDurationSeconds     = "blog_create_duration_seconds"
	BlogCreateDurationSecondsHelp = "Duration of blog creation requests in seconds"
	BlogUpdateRequestsTotal       = "blog_update_requests_total"
	BlogUpdateRequestsTotalHelp   = "Total number of blog update requests received"
	BlogUpdateErrorsTotal         = "blog_update_errors_total"
	BlogUpdateErrorsTotalHelp     = "Total number of errors during blog updates"
	BlogDeleteRequestsTotal       = "blog_delete_requests_total"
	BlogDeleteRequestsTotalHelp   = "Total number of blog delete requests received"
	BlogDeleteErrorsTotal         = "blog_delete_errors_total"
	BlogDeleteErrorsTotalHelp     = "Total number of errors during blog deletes"
)
