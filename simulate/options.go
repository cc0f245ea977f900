package simulate

// Option is a function that configures LinearRegressionData
type Option func(*LinearRegressionData)

// WithSNR sets the target signal-to-noise ratio for the generated data
func WithSNR(snr float64) Option {
	return func(d *LinearRegressionData) {
		d.snr = snr
		d.hasSNR = true
	}
}

// WithIntercept sets whether the model includes an intercept term
func WithIntercept(intercept bool) Option {
	return func(d *LinearRegressionData) {
		d.intercept = intercept
	}
}
