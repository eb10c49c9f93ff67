package oneaway

import (
	"fmt"
	"strings"

	"github.com/projectdiscovery/gologger"
	urlutil "github.com/projectdiscovery/utils/url"
	"golang.org/x/net/publicsuffix"
)

// Input contains parsed/evaluated data of a domain used in domain mode.
// Only the leftmost label is ever permuted; the suffix is carried through
// untouched so generated variants stay inside the original zone shape
// (ex: `api.example.co.uk` -> `spi.example.co.uk`).
type Input struct {
	TLD    string // only TLD (right most part of domain) ex: `uk`
	ETLD   string // public suffix (ex: co.uk)
	SLD    string // second-level domain (ex: scanme)
	Root   string // root domain (eTLD+1)
	Sub    string // leftmost prefix of subdomain, empty for bare root domains
	Suffix string // everything except the permuted label
}

// Base returns the label typo variants are generated for: the leftmost
// subdomain label, or the second-level domain when no subdomain exists.
func (i *Input) Base() string {
	if i.Sub != "" {
		return i.Sub
	}
	return i.SLD
}

// Assemble rejoins a variant of the base label with the untouched suffix
func (i *Input) Assemble(variant string) string {
	if i.Suffix == "" {
		return variant
	}
	return variant + "." + i.Suffix
}

// NewInput parses a domain (or URL) into its permutation-relevant parts
func NewInput(inputURL string) (*Input, error) {
	URL, err := urlutil.Parse(inputURL)
	if err != nil {
		return nil, err
	}
	if strings.Contains(URL.Hostname(), "*") {
		return nil, fmt.Errorf("input %v is not a valid domain, skipping", inputURL)
	}
	ivar := &Input{}
	suffix, _ := publicsuffix.PublicSuffix(URL.Hostname())
	if strings.Contains(suffix, ".") {
		ivar.ETLD = suffix
		arr := strings.Split(suffix, ".")
		ivar.TLD = arr[len(arr)-1]
	} else {
		ivar.TLD = suffix
	}
	rootDomain, err := publicsuffix.EffectiveTLDPlusOne(URL.Hostname())
	if err != nil {
		// input domain is eTLD/publicsuffix only, ex: `.com` or `co.uk`
		gologger.Warning().Msgf("input domain %v is eTLD/publicsuffix and not a valid domain name", URL.Hostname())
		return nil, fmt.Errorf("input %v has no eTLD+1, skipping", inputURL)
	}
	ivar.Root = rootDomain
	if ivar.ETLD != "" {
		ivar.SLD = strings.TrimSuffix(rootDomain, "."+ivar.ETLD)
	} else {
		ivar.SLD = strings.TrimSuffix(rootDomain, "."+ivar.TLD)
	}
	// anything before the root domain is subdomain; only the first label is
	// permuted, the rest belongs to the suffix
	subdomainPrefix := strings.TrimSuffix(URL.Hostname(), rootDomain)
	subdomainPrefix = strings.TrimSuffix(subdomainPrefix, ".")
	if strings.Contains(subdomainPrefix, ".") {
		prefixes := strings.SplitN(subdomainPrefix, ".", 2)
		ivar.Sub = prefixes[0]
	} else {
		ivar.Sub = subdomainPrefix
	}
	if ivar.Sub != "" {
		ivar.Suffix = strings.TrimPrefix(URL.Hostname(), ivar.Sub+".")
	} else if ivar.ETLD != "" {
		ivar.Suffix = ivar.ETLD
	} else {
		ivar.Suffix = ivar.TLD
	}
	return ivar, nil
}
