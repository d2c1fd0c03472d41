// Package ntstatus implements the NTSTATUS code registry (spec.md §3.7,
// §4.6): a 32-bit status value, its bitfield decomposition, and a
// process-wide table mapping known codes to names and messages.
//
// Grounded on original_source/carnaval/smb/SMB_Status.py's NTStatus class
// (a lookup-by-code-only-or-create-and-register overloaded constructor)
// and on the teacher's own smb2_types.go NTStatus const block, reworked
// from a Python subclass-of-long into a Go named uint32 type plus an
// explicit registry map (Go has no runtime class-registration hook to
// lean on).
package ntstatus

import "fmt"

// NTStatus is a 32-bit status value as defined by MS-ERREF.
type NTStatus uint32

// Severity values, matching the top 2 bits of an NTSTATUS.
const (
	SeveritySuccess = 0
	SeverityInfo    = 1
	SeverityWarning = 2
	SeverityError   = 3
)

var severityNames = [4]string{"Success", "Info", "Warning", "Error"}

// Severity returns the 2-bit severity field (bits 30-31).
func (s NTStatus) Severity() int { return int(s>>30) & 0x03 }

// SeverityName returns the human-readable name of Severity().
func (s NTStatus) SeverityName() string { return severityNames[s.Severity()] }

// Customer reports the Customer bit (bit 29): set when the facility
// code is a customer-defined value rather than one of Microsoft's.
func (s NTStatus) Customer() bool { return s&0x20000000 != 0 }

// NReserved reports the N bit (bit 28), reserved by MS-ERREF.
func (s NTStatus) NReserved() bool { return s&0x10000000 != 0 }

// Facility returns the 12-bit facility field (bits 16-27).
func (s NTStatus) Facility() uint16 { return uint16(s>>16) & 0x0FFF }

// SubCode returns the 16-bit subcode field (bits 0-15).
func (s NTStatus) SubCode() uint16 { return uint16(s) }

// SubCodes returns the (severity, customer, nReserved, facility, subCode)
// tuple in one call, mirroring NTStatus.getTuple in the original.
func (s NTStatus) SubCodes() (severity int, customer, nReserved bool, facility, subCode uint16) {
	return s.Severity(), s.Customer(), s.NReserved(), s.Facility(), s.SubCode()
}

// IsSuccess reports whether the severity field indicates success.
func (s NTStatus) IsSuccess() bool { return s.Severity() == SeveritySuccess }

// IsError reports whether the severity field indicates an error.
func (s NTStatus) IsError() bool { return s.Severity() == SeverityError }

var registry = make(map[NTStatus]entry)

type entry struct {
	name    string
	message string
}

// Register adds code to the process-wide registry under name, with an
// optional human-readable message. Register is normally called only from
// this package's init — exported so callers can register vendor-specific
// or newly-documented codes this table doesn't yet carry.
func Register(code NTStatus, name, message string) {
	registry[code] = entry{name: name, message: message}
}

// Name returns the registered name for code, or a synthesized
// "STATUS_0xNNNNNNNN" if code is unregistered.
func (s NTStatus) Name() string {
	if e, ok := registry[s]; ok {
		return e.name
	}
	return fmt.Sprintf("STATUS_0x%08X", uint32(s))
}

// Message returns the registered descriptive message for code, or "" if
// code is unregistered or was registered without one.
func (s NTStatus) Message() string {
	return registry[s].message
}

// String renders the status as "NAME (0xNNNNNNNN)".
func (s NTStatus) String() string {
	return fmt.Sprintf("%s (0x%08X)", s.Name(), uint32(s))
}

// Lookup reports whether code is present in the registry, and its entry's
// name/message if so.
func Lookup(code NTStatus) (name, message string, ok bool) {
	e, ok := registry[code]
	return e.name, e.message, ok
}

// The well-known codes spec.md §4.6 requires at minimum, plus the broader
// set recovered from SMB_Status.py's _init_dict and the teacher's own
// smb2_types.go const block.
const (
	StatusSuccess                 NTStatus = 0x00000000
	StatusPending                 NTStatus = 0x00000103
	StatusReparse                 NTStatus = 0x00000104
	StatusNotifyCleanup           NTStatus = 0x0000010B
	StatusNotifyEnumDir           NTStatus = 0x0000010C
	StatusBufferOverflow          NTStatus = 0x80000005
	StatusNoMoreFiles             NTStatus = 0x80000006
	StatusEAListInconsistent      NTStatus = 0x80000014
	StatusNoMoreEntries           NTStatus = 0x8000001A
	StatusStoppedOnSymlink        NTStatus = 0x8000002D
	StatusUnsuccessful            NTStatus = 0xC0000001
	StatusInvalidInfoClass        NTStatus = 0xC0000003
	StatusInfoLengthMismatch      NTStatus = 0xC0000004
	StatusInvalidParameter        NTStatus = 0xC000000D
	StatusInvalidDeviceRequest    NTStatus = 0xC0000010
	StatusNoSuchFile              NTStatus = 0xC000000F
	StatusEndOfFile               NTStatus = 0xC0000011
	StatusMoreProcessingRequired  NTStatus = 0xC0000016
	StatusAccessDenied            NTStatus = 0xC0000022
	StatusObjectNameInvalid       NTStatus = 0xC0000033
	StatusObjectNameNotFound      NTStatus = 0xC0000034
	StatusObjectNameCollision     NTStatus = 0xC0000035
	StatusObjectPathNotFound      NTStatus = 0xC000003A
	StatusSharingViolation        NTStatus = 0xC0000043
	StatusDeletePending           NTStatus = 0xC0000056
	StatusPrivilegeNotHeld        NTStatus = 0xC0000061
	StatusLogonFailure            NTStatus = 0xC000006D
	StatusAccountRestriction      NTStatus = 0xC000006E
	StatusPasswordExpired         NTStatus = 0xC0000071
	StatusInsufficientResources   NTStatus = 0xC000009A
	StatusNetworkNameDeleted      NTStatus = 0xC00000C9
	StatusFileIsADirectory        NTStatus = 0xC00000BA
	StatusNotSupported            NTStatus = 0xC00000BB
	StatusBadNetworkName          NTStatus = 0xC00000CC
	StatusNotSameDevice           NTStatus = 0xC00000D4
	StatusFileRenamed             NTStatus = 0xC00000D5
	StatusNotADirectory           NTStatus = 0xC0000103
	StatusFileClosed              NTStatus = 0xC0000128
	StatusCancelled               NTStatus = 0xC0000120
	StatusDirectoryNotEmpty       NTStatus = 0xC0000101
	StatusUserSessionDeleted      NTStatus = 0xC0000203
	StatusNotFound                NTStatus = 0xC0000225
	StatusFileNotAvailable        NTStatus = 0xC0000467

	// The remainder of SMB_Status.py's _init_dict (spec.md §4.6, SPEC_FULL.md
	// §7's Open Question resolution: the registry is the full ~70-entry set
	// from _init_dict, not just a hand-picked minimum).
	StatusInvalidHandle              NTStatus = 0xC0000008
	StatusNoMemory                   NTStatus = 0xC0000017
	StatusBufferTooSmall             NTStatus = 0xC0000023
	StatusEASNotSupported            NTStatus = 0xC000004F
	StatusNonexistentEAEntry         NTStatus = 0xC0000051
	StatusFileLockConflict           NTStatus = 0xC0000054
	StatusLockNotGranted             NTStatus = 0xC0000055
	StatusNoSuchLogonSession         NTStatus = 0xC000005F
	StatusNoSuchUser                 NTStatus = 0xC0000064
	StatusWrongPassword              NTStatus = 0xC000006A
	StatusPasswordRestriction        NTStatus = 0xC000006C
	StatusInvalidLogonHours          NTStatus = 0xC000006F
	StatusInvalidWorkstation         NTStatus = 0xC0000070
	StatusNoneMapped                 NTStatus = 0xC0000073
	StatusNoToken                    NTStatus = 0xC000007C
	StatusRangeNotLocked             NTStatus = 0xC000007E
	StatusDiskFull                   NTStatus = 0xC000007F
	StatusIOTimeout                  NTStatus = 0xC00000B5
	StatusFileForcedClosed           NTStatus = 0xC00000B6
	StatusInvalidNetworkResponse     NTStatus = 0xC00000C3
	StatusRequestNotAccepted         NTStatus = 0xC00000D0
	StatusNoSuchDomain               NTStatus = 0xC00000DF
	StatusInvalidOplockProtocol      NTStatus = 0xC00000E3
	StatusInternalError              NTStatus = 0xC00000E5
	StatusFileCorruptError           NTStatus = 0xC0000102
	StatusPipeBroken                 NTStatus = 0xC000014B
	StatusLogonTypeNotGranted        NTStatus = 0xC000015B
	StatusInvalidDeviceState         NTStatus = 0xC0000184
	StatusTrustedRelationshipFailure NTStatus = 0xC000018D
	StatusTrustFailure               NTStatus = 0xC0000190
	StatusNetlogonNotStarted         NTStatus = 0xC0000192
	StatusFSDriverRequired           NTStatus = 0xC000019C
	StatusConnectionDisconnected     NTStatus = 0xC000020C
	StatusPasswordMustChange         NTStatus = 0xC0000224
	StatusDuplicateObjectID          NTStatus = 0xC000022A
	StatusDomainControllerNotFound   NTStatus = 0xC0000233
	StatusNetworkUnreachable         NTStatus = 0xC000023C
	StatusVolumeDismounted           NTStatus = 0xC000026E
	StatusPKInitNameMismatch         NTStatus = 0xC00002F9
	StatusPKInitFailure              NTStatus = 0xC0000320
	StatusNetworkSessionExpired      NTStatus = 0xC000035C
	StatusSmartcardWrongPIN          NTStatus = 0xC0000380
	StatusSmartcardCardBlocked       NTStatus = 0xC0000381
	StatusSmartcardNoCard            NTStatus = 0xC0000383
	StatusDowngradeDetected          NTStatus = 0xC0000388
	StatusPKInitClientFailure        NTStatus = 0xC000038C
	StatusSmartcardSilentContext     NTStatus = 0xC000038F
	StatusServerUnavailable          NTStatus = 0xC0000466
	StatusHashNotSupported           NTStatus = 0xC000A100
	StatusHashNotPresent             NTStatus = 0xC000A101
)

func init() {
	Register(StatusSuccess, "STATUS_SUCCESS", "The operation completed successfully.")
	Register(StatusPending, "STATUS_PENDING", "The operation that was requested is pending completion.")
	Register(StatusReparse, "STATUS_REPARSE", "A file system reparse operation was detected.")
	Register(StatusNotifyCleanup, "STATUS_NOTIFY_CLEANUP", "Notify enumeration is being terminated.")
	Register(StatusNotifyEnumDir, "STATUS_NOTIFY_ENUM_DIR", "A directory notification buffer needs to be enumerated.")
	Register(StatusBufferOverflow, "STATUS_BUFFER_OVERFLOW", "The data was too large to fit into the specified buffer.")
	Register(StatusNoMoreFiles, "STATUS_NO_MORE_FILES", "No more files were found which match the file specification.")
	Register(StatusEAListInconsistent, "STATUS_EA_LIST_INCONSISTENT", "The extended attribute (EA) list is inconsistent.")
	Register(StatusNoMoreEntries, "STATUS_NO_MORE_ENTRIES", "No more entries are available from an enumeration operation.")
	Register(StatusStoppedOnSymlink, "STATUS_STOPPED_ON_SYMLINK", "The create operation stopped after reaching a symbolic link.")
	Register(StatusUnsuccessful, "STATUS_UNSUCCESSFUL", "The requested operation was unsuccessful.")
	Register(StatusInvalidInfoClass, "STATUS_INVALID_INFO_CLASS", "The specified information class is not a valid information class.")
	Register(StatusInfoLengthMismatch, "STATUS_INFO_LENGTH_MISMATCH", "The specified information record length does not match the length required.")
	Register(StatusInvalidParameter, "STATUS_INVALID_PARAMETER", "An invalid parameter was passed to a service or function.")
	Register(StatusInvalidDeviceRequest, "STATUS_INVALID_DEVICE_REQUEST", "The specified request is not a valid operation for the target device.")
	Register(StatusNoSuchFile, "STATUS_NO_SUCH_FILE", "The file does not exist.")
	Register(StatusEndOfFile, "STATUS_END_OF_FILE", "The end-of-file marker has been reached.")
	Register(StatusMoreProcessingRequired, "STATUS_MORE_PROCESSING_REQUIRED", "Further action is required to complete the requested operation.")
	Register(StatusAccessDenied, "STATUS_ACCESS_DENIED", "A process has requested access to an object but has not been granted those access rights.")
	Register(StatusObjectNameInvalid, "STATUS_OBJECT_NAME_INVALID", "The object name is invalid.")
	Register(StatusObjectNameNotFound, "STATUS_OBJECT_NAME_NOT_FOUND", "The object name is not found.")
	Register(StatusObjectNameCollision, "STATUS_OBJECT_NAME_COLLISION", "The object name already exists.")
	Register(StatusObjectPathNotFound, "STATUS_OBJECT_PATH_NOT_FOUND", "The object path does not exist.")
	Register(StatusSharingViolation, "STATUS_SHARING_VIOLATION", "A file cannot be opened because the share access flags are incompatible.")
	Register(StatusDeletePending, "STATUS_DELETE_PENDING", "The file for which a physical file is being created has a delete pending.")
	Register(StatusPrivilegeNotHeld, "STATUS_PRIVILEGE_NOT_HELD", "A required privilege is not held by the client.")
	Register(StatusLogonFailure, "STATUS_LOGON_FAILURE", "The attempted logon is invalid due to a bad username or authentication information.")
	Register(StatusAccountRestriction, "STATUS_ACCOUNT_RESTRICTION", "Account restrictions prevent this user from signing in.")
	Register(StatusPasswordExpired, "STATUS_PASSWORD_EXPIRED", "The user's password has expired.")
	Register(StatusInsufficientResources, "STATUS_INSUFFICIENT_RESOURCES", "Insufficient system resources exist to complete the requested service.")
	Register(StatusNetworkNameDeleted, "STATUS_NETWORK_NAME_DELETED", "The network name was deleted.")
	Register(StatusFileIsADirectory, "STATUS_FILE_IS_A_DIRECTORY", "The file that was specified as a target is a directory, and the caller specified that it could be anything but a directory.")
	Register(StatusNotSupported, "STATUS_NOT_SUPPORTED", "The request is not supported.")
	Register(StatusBadNetworkName, "STATUS_BAD_NETWORK_NAME", "The specified share name cannot be found on the remote server.")
	Register(StatusNotSameDevice, "STATUS_NOT_SAME_DEVICE", "The files must be on the same device.")
	Register(StatusFileRenamed, "STATUS_FILE_RENAMED", "The file has been renamed.")
	Register(StatusNotADirectory, "STATUS_NOT_A_DIRECTORY", "A requested opened file is not a directory.")
	Register(StatusFileClosed, "STATUS_FILE_CLOSED", "An I/O request other than close was performed on a file after it was closed.")
	Register(StatusCancelled, "STATUS_CANCELLED", "The I/O request was canceled.")
	Register(StatusDirectoryNotEmpty, "STATUS_DIRECTORY_NOT_EMPTY", "The directory is not empty.")
	Register(StatusUserSessionDeleted, "STATUS_USER_SESSION_DELETED", "The remote user session has been deleted.")
	Register(StatusNotFound, "STATUS_NOT_FOUND", "The object was not found.")
	Register(StatusFileNotAvailable, "STATUS_FILE_NOT_AVAILABLE", "The file is temporarily unavailable.")

	Register(StatusInvalidHandle, "STATUS_INVALID_HANDLE", "An invalid HANDLE was specified.")
	Register(StatusNoMemory, "STATUS_NO_MEMORY", "Insufficient quota; not enough virtual memory or paging file quota is available to complete the operation.")
	Register(StatusBufferTooSmall, "STATUS_BUFFER_TOO_SMALL", "The buffer is too small to contain the entry; no information has been written to the buffer.")
	Register(StatusEASNotSupported, "STATUS_EAS_NOT_SUPPORTED", "An operation involving EAs failed because the file system does not support EAs.")
	Register(StatusNonexistentEAEntry, "STATUS_NONEXISTENT_EA_ENTRY", "An EA operation failed because the name or EA index is invalid.")
	Register(StatusFileLockConflict, "STATUS_FILE_LOCK_CONFLICT", "A requested read/write cannot be granted due to a conflicting file lock.")
	Register(StatusLockNotGranted, "STATUS_LOCK_NOT_GRANTED", "A requested file lock cannot be granted due to other existing locks.")
	Register(StatusNoSuchLogonSession, "STATUS_NO_SUCH_LOGON_SESSION", "A specified logon session does not exist; it may already have been terminated.")
	Register(StatusNoSuchUser, "STATUS_NO_SUCH_USER", "The specified account does not exist.")
	Register(StatusWrongPassword, "STATUS_WRONG_PASSWORD", "The value provided as the current password is not correct.")
	Register(StatusPasswordRestriction, "STATUS_PASSWORD_RESTRICTION", "A password update rule has been violated.")
	Register(StatusInvalidLogonHours, "STATUS_INVALID_LOGON_HOURS", "The user account has time restrictions and may not be logged onto at this time.")
	Register(StatusInvalidWorkstation, "STATUS_INVALID_WORKSTATION", "The user account is restricted so that it may not be used to log on from the source workstation.")
	Register(StatusNoneMapped, "STATUS_NONE_MAPPED", "None of the information to be translated has been translated.")
	Register(StatusNoToken, "STATUS_NO_TOKEN", "An attempt was made to reference a token that does not exist.")
	Register(StatusRangeNotLocked, "STATUS_RANGE_NOT_LOCKED", "The range specified was not locked.")
	Register(StatusDiskFull, "STATUS_DISK_FULL", "An operation failed because the disk was full.")
	Register(StatusIOTimeout, "STATUS_IO_TIMEOUT", "The specified I/O operation was not completed before the time-out period expired.")
	Register(StatusFileForcedClosed, "STATUS_FILE_FORCED_CLOSED", "The specified file has been closed by another process.")
	Register(StatusInvalidNetworkResponse, "STATUS_INVALID_NETWORK_RESPONSE", "The network responded incorrectly.")
	Register(StatusRequestNotAccepted, "STATUS_REQUEST_NOT_ACCEPTED", "No more connections can be made to this remote computer because the maximum number has already been accepted.")
	Register(StatusNoSuchDomain, "STATUS_NO_SUCH_DOMAIN", "The specified domain did not exist.")
	Register(StatusInvalidOplockProtocol, "STATUS_INVALID_OPLOCK_PROTOCOL", "An invalid opportunistic lock (oplock) acknowledgment was received by a file system.")
	Register(StatusInternalError, "STATUS_INTERNAL_ERROR", "An internal error occurred.")
	Register(StatusFileCorruptError, "STATUS_FILE_CORRUPT_ERROR", "The file or directory is corrupt and unreadable.")
	Register(StatusPipeBroken, "STATUS_PIPE_BROKEN", "The pipe operation has failed because the other end of the pipe has been closed.")
	Register(StatusLogonTypeNotGranted, "STATUS_LOGON_TYPE_NOT_GRANTED", "The user has requested a type of logon that has not been granted.")
	Register(StatusInvalidDeviceState, "STATUS_INVALID_DEVICE_STATE", "The device is not in a valid state to perform this request.")
	Register(StatusTrustedRelationshipFailure, "STATUS_TRUSTED_RELATIONSHIP_FAILURE", "The trust relationship between this workstation and the primary domain failed.")
	Register(StatusTrustFailure, "STATUS_TRUST_FAILURE", "The network logon failed; the validation authority cannot be reached.")
	Register(StatusNetlogonNotStarted, "STATUS_NETLOGON_NOT_STARTED", "An attempt was made to logon, but the NetLogon service was not started.")
	Register(StatusFSDriverRequired, "STATUS_FS_DRIVER_REQUIRED", "A volume has been accessed for which a required file system driver has not yet been loaded.")
	Register(StatusConnectionDisconnected, "STATUS_CONNECTION_DISCONNECTED", "The transport connection is now disconnected.")
	Register(StatusPasswordMustChange, "STATUS_PASSWORD_MUST_CHANGE", "The user password must be changed before logging on the first time.")
	Register(StatusDuplicateObjectID, "STATUS_DUPLICATE_OBJECTID", "The attempt to insert the ID in the index failed because the ID is already in the index.")
	Register(StatusDomainControllerNotFound, "STATUS_DOMAIN_CONTROLLER_NOT_FOUND", "A domain controller for this domain was not found.")
	Register(StatusNetworkUnreachable, "STATUS_NETWORK_UNREACHABLE", "The remote network is not reachable by the transport.")
	Register(StatusVolumeDismounted, "STATUS_VOLUME_DISMOUNTED", "An operation was attempted on a volume after it was dismounted.")
	Register(StatusPKInitNameMismatch, "STATUS_PKINIT_NAME_MISMATCH", "The client certificate does not contain a valid UPN, or does not match the client name in the logon request.")
	Register(StatusPKInitFailure, "STATUS_PKINIT_FAILURE", "The Kerberos protocol encountered an error while validating the KDC certificate during smart card logon.")
	Register(StatusNetworkSessionExpired, "STATUS_NETWORK_SESSION_EXPIRED", "The client session has expired; the client must re-authenticate to continue accessing the remote resources.")
	Register(StatusSmartcardWrongPIN, "STATUS_SMARTCARD_WRONG_PIN", "An incorrect PIN was presented to the smart card.")
	Register(StatusSmartcardCardBlocked, "STATUS_SMARTCARD_CARD_BLOCKED", "The smart card is blocked.")
	Register(StatusSmartcardNoCard, "STATUS_SMARTCARD_NO_CARD", "No smart card is available.")
	Register(StatusDowngradeDetected, "STATUS_DOWNGRADE_DETECTED", "The system detected a possible attempt to compromise security.")
	Register(StatusPKInitClientFailure, "STATUS_PKINIT_CLIENT_FAILURE", "The smart card certificate used for authentication was not trusted.")
	Register(StatusSmartcardSilentContext, "STATUS_SMARTCARD_SILENT_CONTEXT", "The smart card provider could not perform the action because the context was acquired as silent.")
	Register(StatusServerUnavailable, "STATUS_SERVER_UNAVAILABLE", "The file server is temporarily unavailable.")
	Register(StatusHashNotSupported, "STATUS_HASH_NOT_SUPPORTED", "Hash generation for the specified version and hash type is not enabled on the server.")
	Register(StatusHashNotPresent, "STATUS_HASH_NOT_PRESENT", "The hash request is not present or not up to date with the current file contents.")
}
