package restcountries

import (
	"net/url"
	"strconv"
	"strings"
)

// Operation names one endpoint of the API.
type Operation string

const (
	OpAll          Operation = "all"
	OpName         Operation = "name"
	OpCode         Operation = "code"
	OpCodes        Operation = "codes"
	OpCurrency     Operation = "currency"
	OpLanguage     Operation = "language"
	OpCapital      Operation = "capital"
	OpCallingCode  Operation = "calling_code"
	OpRegion       Operation = "region"
	OpRegionalBloc Operation = "regional_bloc"
)

// Request is a fully normalized GET against the API.
type Request struct {
	Operation Operation
	Path      string
	Query     url.Values
}

// URL renders the request relative to baseURL.
func (r Request) URL(baseURL string) string {
	u := strings.TrimRight(baseURL, "/") + r.Path
	if enc := r.Query.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// AllRequest builds GET /all.
func AllRequest(opts ...RequestOption) (Request, error) {
	query, err := queryFor(opts)
	if err != nil {
		return Request{}, err
	}
	return Request{Operation: OpAll, Path: "/all", Query: query}, nil
}

// NameRequest builds GET /name/{name}. fullText is only sent when true.
func NameRequest(name string, fullText bool, opts ...RequestOption) (Request, error) {
	seg, err := pathSegment("name", name)
	if err != nil {
		return Request{}, err
	}
	query, err := queryFor(opts)
	if err != nil {
		return Request{}, err
	}
	if fullText {
		query.Set(paramFullText, "true")
	}
	return Request{Operation: OpName, Path: "/name/" + seg, Query: query}, nil
}

// CodeRequest builds GET /alpha/{code}.
func CodeRequest(code string, opts ...RequestOption) (Request, error) {
	return segmentRequest(OpCode, "/alpha/", "code", code, opts)
}

// CodesRequest builds GET /alpha?codes=...
func CodesRequest(codes CodeList, opts ...RequestOption) (Request, error) {
	value, err := codes.normalize()
	if err != nil {
		return Request{}, err
	}
	query, err := queryFor(opts)
	if err != nil {
		return Request{}, err
	}
	query.Set(paramCodes, value)
	return Request{Operation: OpCodes, Path: "/alpha", Query: query}, nil
}

// CurrencyRequest builds GET /currency/{code}.
func CurrencyRequest(code string, opts ...RequestOption) (Request, error) {
	return segmentRequest(OpCurrency, "/currency/", "currency", code, opts)
}

// LanguageRequest builds GET /lang/{code}.
func LanguageRequest(code string, opts ...RequestOption) (Request, error) {
	return segmentRequest(OpLanguage, "/lang/", "language", code, opts)
}

// CapitalRequest builds GET /capital/{name}.
func CapitalRequest(capital string, opts ...RequestOption) (Request, error) {
	return segmentRequest(OpCapital, "/capital/", "capital", capital, opts)
}

// CallingCodeRequest builds GET /callingcode/{code}; the code is sent verbatim.
func CallingCodeRequest(code string, opts ...RequestOption) (Request, error) {
	seg, err := verbatimSegment("calling code", code)
	if err != nil {
		return Request{}, err
	}
	query, err := queryFor(opts)
	if err != nil {
		return Request{}, err
	}
	return Request{Operation: OpCallingCode, Path: "/callingcode/" + seg, Query: query}, nil
}

// CallingCodeNumberRequest is CallingCodeRequest for a numeric code.
func CallingCodeNumberRequest(code int, opts ...RequestOption) (Request, error) {
	return CallingCodeRequest(strconv.Itoa(code), opts...)
}

// RegionRequest builds GET /region/{region}. Unknown regions are passed through.
func RegionRequest(region Region, opts ...RequestOption) (Request, error) {
	return segmentRequest(OpRegion, "/region/", "region", string(region), opts)
}

// RegionalBlocRequest builds GET /regionalbloc/{bloc}. Unknown blocs are passed through.
func RegionalBlocRequest(bloc RegionalBloc, opts ...RequestOption) (Request, error) {
	return segmentRequest(OpRegionalBloc, "/regionalbloc/", "regional bloc", string(bloc), opts)
}

func segmentRequest(op Operation, prefix, arg, value string, opts []RequestOption) (Request, error) {
	seg, err := pathSegment(arg, value)
	if err != nil {
		return Request{}, err
	}
	query, err := queryFor(opts)
	if err != nil {
		return Request{}, err
	}
	return Request{Operation: op, Path: prefix + seg, Query: query}, nil
}
