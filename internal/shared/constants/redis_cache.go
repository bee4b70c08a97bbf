package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Campora application
// Pattern: campora:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG = 24 * time.Hour // amenity catalogs
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour // listing details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour // listing browse pages
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // analytics, review pages
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // rating summaries
	TTL_DYNAMIC_QUICK  = 2 * time.Minute  // availability calendars
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "campora"
)

// ================== LISTINGS MODULE ==================

const (
	CACHE_KEY_LISTINGS_LIST  = CACHE_PREFIX + ":listings:list"               // + :kind:X:page:Y:limit:Z
	CACHE_KEY_LISTING_DETAIL = CACHE_PREFIX + ":listings:detail:uuid:"       // + listing-id
	CACHE_KEY_AVAILABILITY   = CACHE_PREFIX + ":listings:availability:uuid:" // + listing-id:from:X:to:Y
)

const (
	TTL_LISTINGS_LIST  = TTL_SEMI_STATIC_SHORT
	TTL_LISTING_DETAIL = TTL_SEMI_STATIC_MEDIUM
	TTL_AVAILABILITY   = TTL_DYNAMIC_QUICK
)

// ================== AMENITIES MODULE ==================

const (
	CACHE_KEY_AMENITIES_ACTIVE = CACHE_PREFIX + ":amenities:active:all"
	CACHE_KEY_AMENITY_BY_SLUG  = CACHE_PREFIX + ":amenities:detail:slug:" // + amenity-slug
)

const (
	TTL_AMENITIES_ACTIVE = TTL_STATIC_LONG
	TTL_AMENITY_DETAIL   = TTL_STATIC_LONG
)

// ================== REVIEWS MODULE ==================

const (
	CACHE_KEY_REVIEWS_BY_LISTING = CACHE_PREFIX + ":reviews:listing:uuid:" // + listing-id:page:X
	CACHE_KEY_RATING_SUMMARY     = CACHE_PREFIX + ":reviews:rating:uuid:"  // + listing-id
)

const (
	TTL_REVIEWS_PAGE   = TTL_DYNAMIC_MEDIUM
	TTL_RATING_SUMMARY = TTL_DYNAMIC_SHORT
)

// ================== RESERVATIONS MODULE ==================

const (
	CACHE_KEY_USER_RESERVATIONS = CACHE_PREFIX + ":reservations:user:uuid:" // + user-id:page:X:limit:Y
)

const (
	TTL_USER_RESERVATIONS = TTL_DYNAMIC_MEDIUM
)

// ================== CART MODULE ==================

const (
	CART_KEY = CACHE_PREFIX + ":cart:user:uuid:" // + user-id
)

// ================== ANALYTICS MODULE ==================

const (
	CACHE_KEY_ANALYTICS_DASHBOARD = CACHE_PREFIX + ":analytics:dashboard:admin"
	CACHE_KEY_ANALYTICS_REVENUE   = CACHE_PREFIX + ":analytics:revenue:months:" // + month-count
	CACHE_KEY_ANALYTICS_OCCUPANCY = CACHE_PREFIX + ":analytics:occupancy"
	CACHE_KEY_ANALYTICS_DAILY     = CACHE_PREFIX + ":analytics:reservations:daily:days:" // + day-count
)

const (
	TTL_ANALYTICS_DASHBOARD = TTL_SEMI_STATIC_SHORT
	TTL_ANALYTICS_REVENUE   = TTL_DYNAMIC_MEDIUM
	TTL_ANALYTICS_OCCUPANCY = TTL_DYNAMIC_MEDIUM
	TTL_ANALYTICS_DAILY     = TTL_DYNAMIC_MEDIUM
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_LISTINGS_ALL  = CACHE_PREFIX + ":listings:*"
	PATTERN_INVALIDATE_AMENITIES_ALL = CACHE_PREFIX + ":amenities:*"
	PATTERN_INVALIDATE_REVIEWS_ALL   = CACHE_PREFIX + ":reviews:*"
	PATTERN_INVALIDATE_RESERVATIONS  = CACHE_PREFIX + ":reservations:*"
	PATTERN_INVALIDATE_ANALYTICS     = CACHE_PREFIX + ":analytics:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildListingListKey(kind string, page, limit int) string {
	if kind != "" {
		return CACHE_KEY_LISTINGS_LIST + ":kind:" + kind + fmt.Sprintf(":page:%d:limit:%d", page, limit)
	}
	return CACHE_KEY_LISTINGS_LIST + fmt.Sprintf(":page:%d:limit:%d", page, limit)
}

func BuildListingDetailKey(listingID string) string {
	return CACHE_KEY_LISTING_DETAIL + listingID
}

func BuildAvailabilityKey(listingID, from, to string) string {
	return CACHE_KEY_AVAILABILITY + listingID + ":from:" + from + ":to:" + to
}

func BuildAmenityBySlugKey(slug string) string {
	return CACHE_KEY_AMENITY_BY_SLUG + slug
}

func BuildRatingSummaryKey(listingID string) string {
	return CACHE_KEY_RATING_SUMMARY + listingID
}

func BuildReviewsPageKey(listingID string, page int) string {
	return CACHE_KEY_REVIEWS_BY_LISTING + listingID + fmt.Sprintf(":page:%d", page)
}

func BuildUserReservationsKey(userID string, page, limit int) string {
	return CACHE_KEY_USER_RESERVATIONS + userID + fmt.Sprintf(":page:%d:limit:%d", page, limit)
}

func BuildCartKey(userID string) string {
	return CART_KEY + userID
}

func BuildRevenueKey(months int) string {
	return CACHE_KEY_ANALYTICS_REVENUE + fmt.Sprintf("%d", months)
}

func BuildDailyStatsKey(days int) string {
	return CACHE_KEY_ANALYTICS_DAILY + fmt.Sprintf("%d", days)
}
