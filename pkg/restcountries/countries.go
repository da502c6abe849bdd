package restcountries

import "context"

// All returns every country.
func (c *Client) All(ctx context.Context, opts ...RequestOption) ([]Country, error) {
	req, err := AllRequest(opts...)
	return getJSON[[]Country](ctx, c, req, err)
}

// Name searches by native or partial country name. With fullText the name must match exactly.
func (c *Client) Name(ctx context.Context, name string, fullText bool, opts ...RequestOption) ([]Country, error) {
	req, err := NameRequest(name, fullText, opts...)
	return getJSON[[]Country](ctx, c, req, err)
}

// Code looks up a country by ISO 3166-1 2-letter or 3-letter code.
func (c *Client) Code(ctx context.Context, code string, opts ...RequestOption) (Country, error) {
	req, err := CodeRequest(code, opts...)
	return getJSON[Country](ctx, c, req, err)
}

// Codes looks up several countries by ISO 3166-1 code.
func (c *Client) Codes(ctx context.Context, codes CodeList, opts ...RequestOption) ([]Country, error) {
	req, err := CodesRequest(codes, opts...)
	return getJSON[[]Country](ctx, c, req, err)
}

// Currency searches by ISO 4217 currency code.
func (c *Client) Currency(ctx context.Context, code string, opts ...RequestOption) ([]Country, error) {
	req, err := CurrencyRequest(code, opts...)
	return getJSON[[]Country](ctx, c, req, err)
}

// Language searches by ISO 639-1 language code.
func (c *Client) Language(ctx context.Context, code string, opts ...RequestOption) ([]Country, error) {
	req, err := LanguageRequest(code, opts...)
	return getJSON[[]Country](ctx, c, req, err)
}

// Capital searches by capital city.
func (c *Client) Capital(ctx context.Context, capital string, opts ...RequestOption) ([]Country, error) {
	req, err := CapitalRequest(capital, opts...)
	return getJSON[[]Country](ctx, c, req, err)
}

// CallingCode searches by international calling code.
func (c *Client) CallingCode(ctx context.Context, code string, opts ...RequestOption) ([]Country, error) {
	req, err := CallingCodeRequest(code, opts...)
	return getJSON[[]Country](ctx, c, req, err)
}

// CallingCodeNumber is CallingCode for a numeric code.
func (c *Client) CallingCodeNumber(ctx context.Context, code int, opts ...RequestOption) ([]Country, error) {
	req, err := CallingCodeNumberRequest(code, opts...)
	return getJSON[[]Country](ctx, c, req, err)
}

// Region lists the countries of a region.
func (c *Client) Region(ctx context.Context, region Region, opts ...RequestOption) ([]Country, error) {
	req, err := RegionRequest(region, opts...)
	return getJSON[[]Country](ctx, c, req, err)
}

// RegionalBloc lists the members of a regional bloc.
func (c *Client) RegionalBloc(ctx context.Context, bloc RegionalBloc, opts ...RequestOption) ([]Country, error) {
	req, err := RegionalBlocRequest(bloc, opts...)
	return getJSON[[]Country](ctx, c, req, err)
}
