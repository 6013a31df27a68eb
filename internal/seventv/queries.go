package seventv

const getUserActiveEmoteSetQuery = `query GetUserActiveEmoteSet($username: String!) {
  users(query: $username) {
    id
    username
    connections {
      platform
      emote_set_id
    }
  }
}`

const getEmoteSetQuery = `query GetEmoteSet($set_id: ObjectID!) {
  emoteSet(id: $set_id) {
    id
    name
    emotes {
      id
      name
    }
  }
}`

const emoteRenameMutation = `mutation EmoteRename($set_id: ObjectID!, $emote_id: ObjectID!, $name: String) {
  emoteSet(id: $set_id) {
    id
    emotes(id: $emote_id, action: UPDATE, name: $name) {
      id
      name
    }
  }
}`

// PlatformTwitch is the connection platform whose emote set is shuffled.
const PlatformTwitch = "TWITCH"

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

type userActiveEmoteSetData struct {
	Users []struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		Connections []struct {
			Platform   string  `json:"platform"`
			EmoteSetID *string `json:"emote_set_id"`
		} `json:"connections"`
	} `json:"users"`
}

type emoteSetData struct {
	EmoteSet *EmoteSet `json:"emoteSet"`
}
