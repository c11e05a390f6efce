package redisrepo

import "fmt"

const (
	POST_KEY          = "post:%s"            // <slug>
	POST_LIST_KEY     = "posts:%d:%d"        // <limit>:<offset>
	POST_COMMENTS_KEY = "post:%s-comments"   // <postID>
	PROFILE_KEY       = "profile:%s"         // <profileID>
	FEATURED_KEY      = "posts-featured:%d"  // <limit>
	CATEGORIES_KEY    = "categories"
	TAGS_KEY          = "tags"
	WORKS_KEY         = "works"
)

func PostKey(slug string) string {
	return fmt.Sprintf(POST_KEY, slug)
}

func PostListKey(limit int, offset int) string {
	return fmt.Sprintf(POST_LIST_KEY, limit, offset)
}

func PostCommentsKey(postID string) string {
	return fmt.Sprintf(POST_COMMENTS_KEY, postID)
}

func ProfileKey(profileID string) string {
	return fmt.Sprintf(PROFILE_KEY, profileID)
}

func FeaturedKey(limit int) string {
	return fmt.Sprintf(FEATURED_KEY, limit)
}
