package conf

// DefaultMaxKeyLength - Maximum number of bytes in a key unless configured otherwise
const DefaultMaxKeyLength int = 99

// MaxCapacity - Upper limit of buckets in a chain hash map, a higher capacity is refused as an allocation failure
const MaxCapacity int64 = 1 << 24

// DemoCapacity - Capacity used for the demo run
const DemoCapacity int64 = 65536

// KeyPolicyReject - Key policy refusing keys longer than the max key length
const KeyPolicyReject string = "reject"

// KeyPolicyTruncate - Key policy cutting keys longer than the max key length
const KeyPolicyTruncate string = "truncate"

// ConfigEnvVar - Environment variable holding a config file path, used when no path is given as flag
const ConfigEnvVar string = "CHAINHASHMAP_CONFIG"
